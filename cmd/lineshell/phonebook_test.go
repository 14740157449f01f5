package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineshell/internal/output"
	"lineshell/internal/session"
	"lineshell/internal/testutils"
)

func runScript(t *testing.T, book *phonebook, lines ...string) *output.CaptureBuffer {
	t.Helper()
	buf := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buf), output.TestMode())
	sess, err := session.New(book.builder(),
		session.WithPrinter(printer),
		session.WithSource(session.NewScriptedSource(lines...)),
	)
	require.NoError(t, err)
	require.NoError(t, sess.Run(nil))
	return buf
}

func TestPhonebook_AddListDelete(t *testing.T) {
	book := newPhonebook()
	buf := runScript(t, book,
		"add alice 555-0100",
		"add bob 555-0101",
		"list",
		"delete alice",
		"list",
		"exit",
	)

	out := buf.String()
	assert.Contains(t, out, "alice\t555-0100")
	assert.Contains(t, out, "bob\t555-0101")
	assert.Contains(t, out, "Deleted alice")
	assert.Len(t, book.entries, 1)
}

func TestPhonebook_FindMissingRecoversWithMessage(t *testing.T) {
	book := newPhonebook()
	buf := runScript(t, book,
		"find nobody",
		"add carol 555-0102",
		"exit",
	)

	lines := buf.Lines()
	assert.Contains(t, lines, "No matching entry.")
	// The loop survived the recovery and kept dispatching.
	assert.Len(t, book.entries, 1)
}

func TestPhonebook_UsageErrorShowsHelpLine(t *testing.T) {
	book := newPhonebook()
	// EOF after the bad line triggers the default interrupt hook.
	buf := runScript(t, book, "add onlyname")

	if diff := testutils.DiffTranscripts(
		[]string{"add -- Add an entry: add <name> <number> (aliases: a)", "Exiting..."},
		buf.String(),
	); diff != "" {
		t.Fatalf("transcript mismatch:\n%s", diff)
	}
}

func TestPhonebook_ShortcutsAndAbbreviations(t *testing.T) {
	book := newPhonebook()
	buf := runScript(t, book,
		"a dave 555-0103",
		"f dave",
		"rm dave",
		"exit",
	)

	out := buf.String()
	assert.Contains(t, out, "dave\t555-0103")
	assert.Contains(t, out, "Deleted dave")
	assert.Empty(t, book.entries)
}

func TestPhonebook_SeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"- name: erin\n  number: 555-0104\n- name: frank\n  number: 555-0105\n",
	), 0600))

	book := newPhonebook()
	require.NoError(t, book.loadSeed(path))
	require.Len(t, book.entries, 2)
	assert.Equal(t, "erin", book.entries[0].Name)
	assert.NotEmpty(t, book.entries[0].ID)
}

func TestPhonebook_DynamicPrompt(t *testing.T) {
	book := newPhonebook()
	reg := book.builder().Build()
	assert.Equal(t, "phonebook(0)> ", reg.ResolvePrompt())

	book.entries = append(book.entries, contact{Name: "gail", Number: "555-0106"})
	assert.Equal(t, "phonebook(1)> ", reg.ResolvePrompt())
}
