package builtin

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"lineshell/pkg/linetypes"
)

// shellAction is the shell escape. With an argument it runs one
// subprocess command synchronously and writes the captured output with
// trailing whitespace trimmed; without an argument it hands the terminal
// to an interactive shell. Either way the session loop blocks until the
// subprocess exits.
//
// A non-zero exit status is routine shell traffic, not a session error:
// the command's own stderr is already in the captured output, so the
// status is swallowed and the loop continues. Only failures to run the
// shell at all are reported, and those go to the output stream too.
func shellAction() linetypes.ActionFunc {
	return func(c linetypes.Console, arg string) error {
		if strings.TrimSpace(arg) == "" {
			return interactiveShell()
		}

		out, err := exec.Command(shellPath(), "-c", arg).CombinedOutput()
		if len(out) > 0 {
			c.Write(strings.TrimRight(string(out), " \t\r\n"))
		}
		if err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				c.Write(err.Error())
			}
		}
		return nil
	}
}

func interactiveShell() error {
	cmd := exec.Command(shellPath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func shellPath() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}
