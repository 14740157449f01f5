package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer is the main output handler supporting plain and styled output.
type Printer struct {
	writer     io.Writer
	mode       Mode
	forcePlain bool
	testMode   bool
	silent     bool

	// Thread safety for concurrent output
	mu sync.Mutex
}

var semanticStyles = map[SemanticType]lipgloss.Style{
	SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	SemanticSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	SemanticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	SemanticError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	SemanticCommand: lipgloss.NewStyle().Bold(true),
}

// NewPrinter creates a new Printer with the given options.
// By default it writes to os.Stdout with automatic mode detection.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// Print outputs text without any semantic styling and no trailing newline.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without any semantic styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text followed by a newline without any semantic styling.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs informational text with info styling.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs success text with success styling.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs warning text with warning styling.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs error text with error styling.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Command outputs an action name with command styling and no newline.
func (p *Printer) Command(text string) {
	p.output(SemanticCommand, text, false)
}

// Writer exposes the underlying writer so collaborators (e.g. the line
// reader) can share the same stream.
func (p *Printer) Writer() io.Writer {
	return p.writer
}

func (p *Printer) output(semantic SemanticType, text string, newline bool) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	rendered := text
	if p.styled() && semantic != SemanticPlain {
		if style, ok := semanticStyles[semantic]; ok {
			rendered = style.Render(text)
		}
	}

	if newline {
		fmt.Fprintln(p.writer, rendered)
	} else {
		fmt.Fprint(p.writer, rendered)
	}
}

// styled decides whether styling applies for the current mode.
func (p *Printer) styled() bool {
	if p.forcePlain || p.testMode {
		return false
	}
	switch p.mode {
	case ModeStyled:
		return true
	case ModePlain:
		return false
	default:
		// Auto: style only when stdout is a capable terminal.
		if f, ok := p.writer.(*os.File); ok {
			return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
		}
		return false
	}
}
