package registry

import "lineshell/pkg/linetypes"

// promptSource is the tagged prompt variant: static text or a callable.
type promptSource struct {
	static string
	fn     linetypes.PromptFunc
}

type recoveryVariant int

const (
	recoveryMessage recoveryVariant = iota
	recoveryMethod
)

// Recovery is the tagged handler binding for one error kind: either a
// literal message written to the session output, or the name of a
// registered action invoked with the error text as its argument.
type Recovery struct {
	variant recoveryVariant
	text    string
	action  string
}

// Message creates a recovery that writes text to the session output.
func Message(text string) Recovery {
	return Recovery{variant: recoveryMessage, text: text}
}

// Method creates a recovery that dispatches the named action with the
// error text as its argument string.
func Method(action string) Recovery {
	return Recovery{variant: recoveryMethod, action: action}
}

// IsMessage reports whether this is the message variant.
func (r Recovery) IsMessage() bool {
	return r.variant == recoveryMessage
}

// Text returns the message for the message variant.
func (r Recovery) Text() string {
	return r.text
}

// Action returns the bound action name for the method variant.
func (r Recovery) Action() string {
	return r.action
}
