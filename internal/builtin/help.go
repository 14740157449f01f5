package builtin

import (
	"strings"

	"lineshell/pkg/linetypes"
)

// helpAction renders the full command listing, or the help line of the
// single named command. Unknown or undocumented names route to the
// session's no-help hook.
func helpAction(s Session) linetypes.ActionFunc {
	return func(c linetypes.Console, arg string) error {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			return s.Help().RenderAll(c)
		}
		if !s.Help().RenderOne(c, arg) {
			s.NoHelp(arg)
		}
		return nil
	}
}

// exitAction requests a graceful stop; the iteration in progress always
// completes before the loop terminates.
func exitAction(s Session) linetypes.NiladicFunc {
	return func(_ linetypes.Console) error {
		s.Stop()
		return nil
	}
}
