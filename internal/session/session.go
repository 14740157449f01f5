// Package session runs the interpreter loop: it acquires lines from a
// line source, routes them through the parser, resolver and dispatcher,
// and owns interrupt handling and table-driven error recovery.
package session

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"lineshell/internal/builtin"
	"lineshell/internal/dispatch"
	"lineshell/internal/logger"
	"lineshell/internal/output"
	"lineshell/internal/parser"
	"lineshell/internal/registry"
	"lineshell/internal/resolver"
	"lineshell/internal/services"
)

// Session is one running interpreter instance. It is single-threaded by
// contract: one loop drives everything, and nothing here is safe for
// concurrent use. Registry data, by contrast, is immutable and shareable
// across sessions of the same interpreter type.
type Session struct {
	id      string
	reg     *registry.Registry
	res     *resolver.Resolver
	par     *parser.Parser
	disp    *dispatch.Dispatcher
	hooks   Hooks
	printer *output.Printer
	source  LineSource
	logger  *log.Logger

	help     *services.HelpService
	complete *services.AutoCompleteService

	transform        func(string) string
	showUndocumented bool

	current string
	stop    bool
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithPrinter sets the output printer. Default is the global printer.
func WithPrinter(p *output.Printer) Option {
	return func(s *Session) { s.printer = p }
}

// WithSource sets the line source. Without one, Run creates a readline
// source on first use (unless running one-shot).
func WithSource(src LineSource) Option {
	return func(s *Session) { s.source = src }
}

// WithHooks overrides lifecycle hooks; nil fields keep their defaults.
func WithHooks(h Hooks) Option {
	return func(s *Session) { s.hooks = h }
}

// WithTransform sets the argument-transform hook applied before handlers
// and the missing-command hook see the argument string.
func WithTransform(fn func(string) string) Option {
	return func(s *Session) { s.transform = fn }
}

// HideUndocumented suppresses the undocumented-commands block in the
// full help listing.
func HideUndocumented() Option {
	return func(s *Session) { s.showUndocumented = false }
}

// New builds a session from the declarations on b. The built-in actions
// (help, exit, shell) and their default shortcuts are installed first,
// then the registry is frozen; the setup hook runs before New returns.
func New(b *registry.Builder, opts ...Option) (*Session, error) {
	s := &Session{
		id:               uuid.NewString(),
		showUndocumented: true,
		logger:           logger.NewStyledLogger("Session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.printer == nil {
		s.printer = output.GetGlobalPrinter()
	}
	s.hooks.fillDefaults()

	builtin.Install(b, s)
	s.reg = b.Build()
	s.res = resolver.New(s.reg)
	s.par = parser.New(s.res)
	s.disp = dispatch.New(s.reg, s.transform)

	s.help = services.NewHelpService(s.reg, s.res, s.showUndocumented)
	s.complete = services.NewAutoCompleteService(s.reg, s.res)
	if err := s.help.Initialize(); err != nil {
		return nil, err
	}
	if err := s.complete.Initialize(); err != nil {
		return nil, err
	}

	if s.source != nil {
		s.source.SetCompleter(s.complete.Complete)
	}

	s.hooks.Setup(s)
	return s, nil
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// Registry returns the frozen registry backing this session.
func (s *Session) Registry() *registry.Registry {
	return s.reg
}

// Help returns the help facade. Part of the builtin.Session surface.
func (s *Session) Help() *services.HelpService {
	return s.help
}

// Completions returns completion candidates for the text before the
// cursor; exposed for embedders wiring their own line reader.
func (s *Session) Completions(text string) []string {
	return s.complete.Complete(text)
}

// Write appends line plus a newline to the session output stream.
func (s *Session) Write(line string) {
	s.printer.Println(line)
}

// Print appends raw text to the session output stream, no newline.
func (s *Session) Print(text string) {
	s.printer.Print(text)
}

// SetCurrentCommand records the command being dispatched; it stays
// queryable after the call for postcmd and completion hooks.
func (s *Session) SetCurrentCommand(name string) {
	s.current = name
}

// CurrentCommand returns the most recently dispatched command name.
func (s *Session) CurrentCommand() string {
	return s.current
}

// CommandMissing runs the missing-command hook. Part of the dispatch.Sink
// surface.
func (s *Session) CommandMissing(name, arg string) {
	s.hooks.CommandMissing(s, name, arg)
}

// NoHelp runs the no-help hook. Part of the builtin.Session surface.
func (s *Session) NoHelp(name string) {
	s.hooks.NoHelp(s, name)
}

// Stop requests loop termination. The check happens after each full
// iteration, so the iteration in progress always completes.
func (s *Session) Stop() {
	s.stop = true
}

// Stopped reports whether a stop has been requested.
func (s *Session) Stopped() bool {
	return s.stop
}
