package session

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupted is returned by a LineSource when the user breaks out of
// line acquisition. The loop maps it to the interrupt hook; it is never
// fatal by itself.
var ErrInterrupted = errors.New("interrupted")

// LineSource supplies raw input lines and accepts a completion callback.
// Implementations return io.EOF when input is exhausted and
// ErrInterrupted on a user break.
type LineSource interface {
	ReadLine(prompt string) (string, error)
	SetCompleter(fn func(text string) []string)
	Close() error
}

// ReadlineSource is the interactive LineSource backed by chzyer/readline:
// full line editing, history, and tab completion.
type ReadlineSource struct {
	rl        *readline.Instance
	completer *dynamicCompleter
}

// NewReadlineSource creates a readline-backed source writing its echo and
// completion output to w.
func NewReadlineSource(w io.Writer) (*ReadlineSource, error) {
	completer := &dynamicCompleter{}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		Stdout:          w,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineSource{rl: rl, completer: completer}, nil
}

// ReadLine blocks for one line of input under the given prompt.
func (r *ReadlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return line, nil
}

// SetCompleter installs the completion callback. The callback receives
// the text before the cursor and returns candidates for the trailing
// word.
func (r *ReadlineSource) SetCompleter(fn func(text string) []string) {
	r.completer.fn = fn
}

// Close releases the terminal.
func (r *ReadlineSource) Close() error {
	return r.rl.Close()
}

// dynamicCompleter adapts the string-level completion callback to the
// readline AutoCompleter contract, which wants rune suffixes for the
// word under the cursor.
type dynamicCompleter struct {
	fn func(text string) []string
}

func (d *dynamicCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if d.fn == nil {
		return nil, 0
	}

	text := string(line[:pos])
	word := text
	if i := strings.LastIndexByte(text, ' '); i >= 0 {
		word = text[i+1:]
	}

	var suggestions [][]rune
	for _, candidate := range d.fn(text) {
		if strings.HasPrefix(candidate, word) {
			suggestions = append(suggestions, []rune(strings.TrimPrefix(candidate, word)))
		}
	}
	return suggestions, len(word)
}
