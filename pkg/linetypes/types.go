// Package linetypes defines the public contract of the lineshell framework.
// It contains the handler function types, action specifications, and error
// taxonomy that embedders use to declare an interpreter type.
package linetypes

// Console is the sanctioned output surface for action handlers.
// Write appends the line plus a newline to the session output stream;
// Print appends raw text with no newline.
type Console interface {
	Write(line string)
	Print(text string)
}

// ActionFunc is the body of an action that receives the argument payload.
// The argument is the raw trailing portion of the input line after the
// command tokens, passed as a single string. Splitting it further is up to
// the handler.
type ActionFunc func(c Console, arg string) error

// NiladicFunc is the body of an action that takes no argument. If the input
// line carried an argument string anyway, it is silently dropped before the
// call.
type NiladicFunc func(c Console) error

// CompleterFunc produces completion candidates for the argument portion of
// a specific command. It receives the partial text under the cursor and
// returns candidates in presentation order.
type CompleterFunc func(partial string) []string

// PromptFunc produces the prompt string for the next read. It is evaluated
// once per iteration, so it may observe live session state.
type PromptFunc func() string

// ActionSpec declares one action at registration time. Exactly one of
// Handler and Niladic must be set; the distinction is the only arity the
// dispatcher enforces.
type ActionSpec struct {
	// Handler receives the transformed argument string.
	Handler ActionFunc

	// Niladic is invoked with no argument; any supplied argument string is
	// dropped without diagnosis.
	Niladic NiladicFunc

	// Doc is the one-line description shown by help. Empty means
	// undocumented.
	Doc string

	// Completer, when set, supplies command-specific completion candidates
	// once the command itself has been uniquely completed.
	Completer CompleterFunc
}

// Takes reports whether the spec declares an argument-taking handler.
func (s ActionSpec) Takes() bool {
	return s.Handler != nil
}
