package session

import "fmt"

// Hooks are the overridable lifecycle callbacks of a session. Any nil
// field is filled with the default behavior described on it.
type Hooks struct {
	// Setup runs synchronously at construction, before the first read.
	// Default: nothing.
	Setup func(*Session)

	// Preloop runs once before the first iteration. Default: nothing.
	Preloop func(*Session)

	// Precmd may rewrite the raw line before parsing and dispatch.
	// Default: identity.
	Precmd func(*Session, string) string

	// Postcmd observes the iteration result and may replace it.
	// Default: identity.
	Postcmd func(*Session, error) error

	// Postloop runs once after the loop terminates. Default: nothing.
	Postloop func(*Session)

	// EmptyLine runs for empty or whitespace-only input lines; nothing is
	// dispatched. Default: nothing.
	EmptyLine func(*Session)

	// CommandMissing reports an unresolved or unregistered command. The
	// argument has already been through the transform hook.
	// Default: writes "No such command '<name>'".
	CommandMissing func(s *Session, name, arg string)

	// NoHelp reports a help lookup for an unknown or undocumented
	// command. Default: writes "No help for command '<name>'".
	NoHelp func(s *Session, name string)

	// Interrupt runs when line acquisition is cut short by EOF or an
	// interrupt signal. Default: announces termination and requests stop.
	Interrupt func(*Session)

	// OnError is the generic fallback for errors no recovery binding
	// matched. Default: returns the error unchanged, which terminates
	// Run — escalating by default is deliberate.
	OnError func(*Session, error) error
}

func (h *Hooks) fillDefaults() {
	if h.Setup == nil {
		h.Setup = func(*Session) {}
	}
	if h.Preloop == nil {
		h.Preloop = func(*Session) {}
	}
	if h.Precmd == nil {
		h.Precmd = func(_ *Session, line string) string { return line }
	}
	if h.Postcmd == nil {
		h.Postcmd = func(_ *Session, err error) error { return err }
	}
	if h.Postloop == nil {
		h.Postloop = func(*Session) {}
	}
	if h.EmptyLine == nil {
		h.EmptyLine = func(*Session) {}
	}
	if h.CommandMissing == nil {
		h.CommandMissing = func(s *Session, name, _ string) {
			s.Write(fmt.Sprintf("No such command '%s'", name))
		}
	}
	if h.NoHelp == nil {
		h.NoHelp = func(s *Session, name string) {
			s.Write(fmt.Sprintf("No help for command '%s'", name))
		}
	}
	if h.Interrupt == nil {
		h.Interrupt = func(s *Session) {
			s.Write("Exiting...")
			s.Stop()
		}
	}
	if h.OnError == nil {
		h.OnError = func(_ *Session, err error) error { return err }
	}
}
