// Package dispatch invokes action handlers for resolved commands. It
// checks the declared arity, applies the argument transform hook, and
// falls back to the command-missing hook for unknown names.
package dispatch

import (
	"github.com/charmbracelet/log"

	"lineshell/internal/logger"
	"lineshell/internal/registry"
	"lineshell/pkg/linetypes"
)

// Sink is what the dispatcher needs from a session: the handler output
// surface, the current-command slot, and the missing-command hook.
type Sink interface {
	linetypes.Console
	SetCurrentCommand(name string)
	CommandMissing(name, arg string)
}

// Dispatcher routes resolved command names to their handlers.
type Dispatcher struct {
	reg       *registry.Registry
	transform func(string) string
	logger    *log.Logger
}

// New creates a dispatcher over the given registry. transform is the
// pluggable argument-transform hook; nil means identity.
func New(reg *registry.Registry, transform func(string) string) *Dispatcher {
	if transform == nil {
		transform = func(arg string) string { return arg }
	}
	return &Dispatcher{
		reg:       reg,
		transform: transform,
		logger:    logger.NewStyledLogger("Dispatch"),
	}
}

// Transform applies the argument-transform hook.
func (d *Dispatcher) Transform(arg string) string {
	return d.transform(arg)
}

// Dispatch records the current command on the sink and invokes its
// handler. Unknown names route to the sink's missing-command hook with
// the transformed argument — not an error, the loop continues.
//
// Niladic handlers are invoked with no argument even when an argument
// string was supplied; the string is silently dropped. Argument-taking
// handlers receive the single transformed argument string, never an
// automatic split.
func (d *Dispatcher) Dispatch(sink Sink, name, arg string) error {
	sink.SetCurrentCommand(name)

	spec, exists := d.reg.Spec(name)
	if !exists {
		d.logger.Debug("command missing", "command", name)
		sink.CommandMissing(name, d.transform(arg))
		return nil
	}

	if spec.Niladic != nil {
		return spec.Niladic(sink)
	}
	return spec.Handler(sink, d.transform(arg))
}
