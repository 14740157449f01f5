// Package output provides the console output system for lineshell sessions.
// Action handlers reach the terminal only through a Printer; everything else
// (mode detection, styling, capture for tests) lives here.
package output

// Mode defines different output modes the printer can operate in.
type Mode int

const (
	// ModeAuto automatically detects the best output mode from the terminal.
	ModeAuto Mode = iota

	// ModeStyled forces styled output (colors, formatting).
	ModeStyled

	// ModePlain forces plain text output.
	ModePlain
)

// SemanticType defines the semantic meaning of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents plain text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess represents success or completion text.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticCommand represents command or action-name text.
	SemanticCommand SemanticType = "command"
)
