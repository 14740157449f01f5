package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineshell/internal/registry"
	"lineshell/internal/resolver"
	"lineshell/pkg/linetypes"
)

func completeFixture(t *testing.T) *AutoCompleteService {
	t.Helper()
	b := registry.NewBuilder()
	nop := func(_ linetypes.Console, _ string) error { return nil }
	for _, name := range []string{"add", "list", "shell", "shell_type", "simple"} {
		require.NoError(t, b.Register(name, linetypes.ActionSpec{Handler: nop}))
	}
	require.NoError(t, b.Register("find", linetypes.ActionSpec{
		Handler: nop,
		Completer: func(partial string) []string {
			return []string{"alice", "alfred", "bob"}
		},
	}))

	reg := b.Build()
	a := NewAutoCompleteService(reg, resolver.New(reg))
	require.NoError(t, a.Initialize())
	return a
}

func TestComplete_CommandPrefix(t *testing.T) {
	a := completeFixture(t)

	assert.Equal(t, []string{"shell", "shell_type", "simple"}, a.Complete("s"))
	assert.Equal(t, []string{"simple"}, a.Complete("si"))
	assert.Empty(t, a.Complete("zz"))
}

func TestComplete_CaseSensitive(t *testing.T) {
	a := completeFixture(t)

	assert.Empty(t, a.Complete("S"))
}

func TestComplete_EmptyLineListsAllActions(t *testing.T) {
	a := completeFixture(t)

	assert.Equal(t, []string{"add", "find", "list", "shell", "shell_type", "simple"}, a.Complete(""))
}

func TestComplete_SubcommandComposition(t *testing.T) {
	a := completeFixture(t)

	assert.Equal(t, []string{"type"}, a.Complete("shell "))
	assert.Equal(t, []string{"type"}, a.Complete("shell ty"))
	assert.Empty(t, a.Complete("shell x"))
}

func TestComplete_CommandSpecificCompleter(t *testing.T) {
	a := completeFixture(t)

	assert.Equal(t, []string{"alfred", "alice"}, a.Complete("find al"))
	assert.Equal(t, []string{"alfred", "alice", "bob"}, a.Complete("find "))
}

func TestComplete_UnknownCommandNoArgCandidates(t *testing.T) {
	a := completeFixture(t)

	assert.Empty(t, a.Complete("bogus "))
}

func TestComplete_Uninitialized(t *testing.T) {
	b := registry.NewBuilder()
	reg := b.Build()
	a := NewAutoCompleteService(reg, resolver.New(reg))

	assert.Nil(t, a.Complete("s"))
}
