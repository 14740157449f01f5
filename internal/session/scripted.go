package session

import "io"

// ScriptedSource is a LineSource fed from a fixed list of lines. It backs
// tests and canned script execution; after the last line it reports
// io.EOF like an exhausted terminal.
type ScriptedSource struct {
	lines []string
	next  int
}

// NewScriptedSource creates a source that yields the given lines in
// order.
func NewScriptedSource(lines ...string) *ScriptedSource {
	return &ScriptedSource{lines: lines}
}

// ReadLine returns the next scripted line, ignoring the prompt.
func (s *ScriptedSource) ReadLine(_ string) (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

// SetCompleter is a no-op; scripted input never completes.
func (s *ScriptedSource) SetCompleter(func(text string) []string) {}

// Close is a no-op.
func (s *ScriptedSource) Close() error {
	return nil
}
