// Package builtin declares the actions every lineshell interpreter type
// carries: help, exit, and the shell escape, plus their default shortcuts.
package builtin

import (
	"lineshell/internal/registry"
	"lineshell/internal/services"
	"lineshell/pkg/linetypes"
)

// Session is what the built-in actions need from the owning session.
type Session interface {
	// Stop requests loop termination after the current iteration.
	Stop()

	// Help returns the session's help facade.
	Help() *services.HelpService

	// NoHelp runs the no-help hook for an undocumented or unknown name.
	NoHelp(name string)
}

// Install declares the built-in actions and default shortcuts on the
// builder. Names and aliases the embedder already declared are left
// alone, so interpreter types can override any built-in.
func Install(b *registry.Builder, s Session) {
	if !b.Has("help") {
		b.MustRegister("help", linetypes.ActionSpec{
			Handler: helpAction(s),
			Doc:     "Show help for commands",
		})
	}
	if !b.Has("exit") {
		b.MustRegister("exit", linetypes.ActionSpec{
			Niladic: exitAction(s),
			Doc:     "Exit the interpreter",
		})
	}
	if !b.Has("shell") {
		b.MustRegister("shell", linetypes.ActionSpec{
			Handler: shellAction(),
			Doc:     "Run a shell command, or an interactive shell",
		})
	}

	if !b.HasShortcut("?") {
		b.Shortcut("?", "help")
	}
	if !b.HasShortcut("!") {
		b.Shortcut("!", "shell")
	}
}
