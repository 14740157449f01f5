package session

import (
	"errors"
	"io"
	"strings"

	"lineshell/pkg/linetypes"
)

// Run drives the session loop until a stop is requested or the generic
// error fallback escalates. If args is non-empty the session runs in
// one-shot mode: the args are joined with spaces, run as exactly one
// line, and the loop terminates.
func (s *Session) Run(args []string) error {
	if s.source == nil && len(args) == 0 {
		src, err := NewReadlineSource(s.printer.Writer())
		if err != nil {
			return err
		}
		src.SetCompleter(s.complete.Complete)
		s.source = src
		defer func() { _ = src.Close() }()
	}

	s.hooks.Preloop(s)
	defer s.hooks.Postloop(s)

	first := true
	for {
		var line string

		if first && len(args) > 0 {
			line = strings.Join(args, " ")
			s.stop = true
		} else {
			read, err := s.source.ReadLine(s.reg.ResolvePrompt())
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
					s.hooks.Interrupt(s)
					if s.stop {
						return nil
					}
					first = false
					continue
				}
				return err
			}
			line = read
		}
		first = false

		if err := s.iterate(line); err != nil {
			return err
		}
		if s.stop {
			return nil
		}
	}
}

// iterate runs one full precmd → dispatch → postcmd cycle and routes any
// error through recovery. Nothing escapes an iteration except what the
// generic fallback chooses to re-raise.
func (s *Session) iterate(raw string) error {
	line := s.hooks.Precmd(s, raw)

	command, arg := s.par.ParseLine(line)

	var err error
	if command == "" {
		s.hooks.EmptyLine(s)
	} else {
		name, ok := s.res.Resolve(command)
		if !ok {
			// Let the dispatcher fall through to the missing hook so the
			// raw token shows up in the report.
			name = command
		}
		s.logger.Debug("dispatching", "command", name, "line", raw)
		err = s.disp.Dispatch(s, name, arg)
	}

	err = s.hooks.Postcmd(s, err)
	if err != nil {
		return s.recover(err)
	}
	return nil
}

// recover routes an iteration error through the registry's recovery
// table. Matching is by exact kind; untagged or unbound errors go to the
// generic fallback hook, and so does an error raised by the recovery
// action itself. The fallback is the only way out of an iteration.
func (s *Session) recover(err error) error {
	if kind, tagged := linetypes.KindOf(err); tagged {
		if rec, bound := s.reg.RecoveryFor(kind); bound {
			if rec.IsMessage() {
				s.Write(rec.Text())
				return nil
			}
			if recErr := s.disp.Dispatch(s, rec.Action(), err.Error()); recErr != nil {
				return s.hooks.OnError(s, recErr)
			}
			return nil
		}
	}
	return s.hooks.OnError(s, err)
}
