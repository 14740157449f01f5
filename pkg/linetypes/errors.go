package linetypes

import "errors"

// ErrorKind tags a domain error for the declarative recovery table.
// Matching is by exact tag equality; there is no kind hierarchy.
type ErrorKind string

// KindTagged is implemented by errors that carry an ErrorKind. DomainError
// implements it; embedders with richer error types can implement it
// directly instead of wrapping.
type KindTagged interface {
	error
	ErrorKind() ErrorKind
}

// DomainError is the standard tagged error raised by action handlers that
// want table-driven recovery at the session loop.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

// NewDomainError creates a tagged error with the given kind and message.
func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// ErrorKind implements KindTagged.
func (e *DomainError) ErrorKind() ErrorKind {
	return e.Kind
}

// KindOf extracts the ErrorKind from err if any error in its chain is
// tagged. The second return is false for untagged errors.
func KindOf(err error) (ErrorKind, bool) {
	var tagged KindTagged
	if errors.As(err, &tagged) {
		return tagged.ErrorKind(), true
	}
	return "", false
}
