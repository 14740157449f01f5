// Package testutils provides shared helpers for lineshell tests:
// transcript capture and readable diffs for expected-vs-actual output.
package testutils

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStrings renders a human-readable diff between expected and actual
// text for test failure messages. Returns "" when they are equal.
func DiffStrings(expected, actual string) string {
	if expected == actual {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// DiffTranscripts joins expected lines with newlines and diffs them
// against a captured transcript.
func DiffTranscripts(expected []string, actual string) string {
	return DiffStrings(strings.Join(expected, "\n")+"\n", actual)
}
