package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineshell/internal/output"
	"lineshell/internal/registry"
	"lineshell/pkg/linetypes"
)

const kindTest linetypes.ErrorKind = "test_kind"

// sampleBuilder declares the action set the resolution scenarios run
// against: add, find, list, delete, simple, plus the built-ins help,
// shell and exit installed by New.
func sampleBuilder(t *testing.T) *registry.Builder {
	t.Helper()
	b := registry.NewBuilder()
	nop := func(_ linetypes.Console, _ string) error { return nil }

	for _, name := range []string{"add", "find", "delete"} {
		require.NoError(t, b.Register(name, linetypes.ActionSpec{Handler: nop}))
	}
	require.NoError(t, b.Register("list", linetypes.ActionSpec{
		Niladic: func(c linetypes.Console) error {
			c.Write("listing")
			return nil
		},
	}))
	require.NoError(t, b.Register("simple", linetypes.ActionSpec{
		Handler: func(c linetypes.Console, _ string) error {
			c.Write("simple!")
			return nil
		},
		Doc: "A simple test action",
	}))
	return b
}

func newTestSession(t *testing.T, b *registry.Builder, opts []Option, lines ...string) (*Session, *output.CaptureBuffer) {
	t.Helper()
	buf := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buf), output.TestMode())
	opts = append([]Option{
		WithPrinter(printer),
		WithSource(NewScriptedSource(lines...)),
	}, opts...)
	sess, err := New(b, opts...)
	require.NoError(t, err)
	return sess, buf
}

func TestRun_UniquePrefixDispatches(t *testing.T) {
	// "si" is a unique prefix of simple among all top-level actions.
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "si")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "simple!")
	assert.Equal(t, "simple", sess.CurrentCommand())
}

func TestRun_AmbiguousPrefixReportsMissing(t *testing.T) {
	// "s" prefixes both shell and simple.
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "s")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "No such command 's'")
}

func TestRun_EmptyLineHook(t *testing.T) {
	hooks := Hooks{
		EmptyLine: func(s *Session) { s.Write("hit return") },
	}
	sess, buf := newTestSession(t, sampleBuilder(t), []Option{WithHooks(hooks)}, "   ", "simple")

	require.NoError(t, sess.Run(nil))
	lines := buf.Lines()
	assert.Contains(t, lines, "hit return")
	assert.Contains(t, lines, "simple!")
}

func TestRun_MessageRecoveryKeepsLoopAlive(t *testing.T) {
	b := sampleBuilder(t)
	require.NoError(t, b.Register("boom", linetypes.ActionSpec{
		Handler: func(_ linetypes.Console, _ string) error {
			return linetypes.NewDomainError(kindTest, "it broke")
		},
	}))
	b.OnError(kindTest, registry.Message("Recovered."))
	sess, buf := newTestSession(t, b, nil, "boom", "simple")

	require.NoError(t, sess.Run(nil))
	lines := buf.Lines()
	assert.Contains(t, lines, "Recovered.")
	assert.Contains(t, lines, "simple!", "loop continues after recovery")
}

func TestRun_MethodRecoveryDispatchesBoundAction(t *testing.T) {
	b := sampleBuilder(t)
	require.NoError(t, b.Register("boom", linetypes.ActionSpec{
		Handler: func(_ linetypes.Console, _ string) error {
			return linetypes.NewDomainError(kindTest, "it broke")
		},
	}))
	require.NoError(t, b.Register("mop", linetypes.ActionSpec{
		Handler: func(c linetypes.Console, arg string) error {
			c.Write("mopping up: " + arg)
			return nil
		},
	}))
	b.OnError(kindTest, registry.Method("mop"))
	sess, buf := newTestSession(t, b, nil, "boom")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "mopping up: it broke")
}

func TestRun_MethodRecoveryErrorRoutesToFallback(t *testing.T) {
	b := sampleBuilder(t)
	require.NoError(t, b.Register("boom", linetypes.ActionSpec{
		Handler: func(_ linetypes.Console, _ string) error {
			return linetypes.NewDomainError(kindTest, "it broke")
		},
	}))
	mopErr := errors.New("mop bucket missing")
	require.NoError(t, b.Register("mop", linetypes.ActionSpec{
		Handler: func(_ linetypes.Console, _ string) error { return mopErr },
	}))
	b.OnError(kindTest, registry.Method("mop"))

	var caught error
	hooks := Hooks{
		OnError: func(_ *Session, err error) error {
			caught = err
			return nil
		},
	}
	sess, buf := newTestSession(t, b, []Option{WithHooks(hooks)}, "boom", "simple")

	require.NoError(t, sess.Run(nil))
	assert.ErrorIs(t, caught, mopErr, "recovery action errors go to the fallback hook")
	assert.Contains(t, buf.Lines(), "simple!", "loop survives when the fallback recovers")
}

func TestRun_FailedShellEscapeKeepsLoopAlive(t *testing.T) {
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "! false", "simple", "exit")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "simple!")
}

func TestRun_UnboundErrorEscalates(t *testing.T) {
	b := sampleBuilder(t)
	boom := errors.New("fatal by default")
	require.NoError(t, b.Register("boom", linetypes.ActionSpec{
		Handler: func(_ linetypes.Console, _ string) error { return boom },
	}))
	sess, _ := newTestSession(t, b, nil, "boom", "simple")

	err := sess.Run(nil)
	assert.ErrorIs(t, err, boom)
}

func TestRun_OnErrorOverrideRecovers(t *testing.T) {
	b := sampleBuilder(t)
	require.NoError(t, b.Register("boom", linetypes.ActionSpec{
		Handler: func(_ linetypes.Console, _ string) error { return errors.New("oops") },
	}))
	hooks := Hooks{
		OnError: func(s *Session, err error) error {
			s.Write(fmt.Sprintf("caught: %v", err))
			return nil
		},
	}
	sess, buf := newTestSession(t, b, []Option{WithHooks(hooks)}, "boom", "simple")

	require.NoError(t, sess.Run(nil))
	lines := buf.Lines()
	assert.Contains(t, lines, "caught: oops")
	assert.Contains(t, lines, "simple!")
}

func TestRun_OneShotMode(t *testing.T) {
	// One-shot mode never touches the line source.
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "list")

	require.NoError(t, sess.Run([]string{"simple"}))
	lines := buf.Lines()
	assert.Contains(t, lines, "simple!")
	assert.NotContains(t, lines, "listing", "scripted line must not be consumed")
	assert.True(t, sess.Stopped())
}

func TestRun_OneShotJoinsArgs(t *testing.T) {
	b := sampleBuilder(t)
	require.NoError(t, b.Register("echo", linetypes.ActionSpec{
		Handler: func(c linetypes.Console, arg string) error {
			c.Write(arg)
			return nil
		},
	}))
	sess, buf := newTestSession(t, b, nil)

	require.NoError(t, sess.Run([]string{"echo", "hello", "world"}))
	assert.Contains(t, buf.Lines(), "hello world")
}

func TestRun_EOFTriggersInterruptHook(t *testing.T) {
	sess, buf := newTestSession(t, sampleBuilder(t), nil)

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "Exiting...")
	assert.True(t, sess.Stopped())
}

func TestRun_ExitStopsBeforeRemainingLines(t *testing.T) {
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "exit", "simple")

	require.NoError(t, sess.Run(nil))
	assert.NotContains(t, buf.Lines(), "simple!")
}

func TestRun_ShortcutDispatches(t *testing.T) {
	b := sampleBuilder(t)
	b.Shortcut("ls", "list")
	sess, buf := newTestSession(t, b, nil, "ls")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "listing")
}

func TestRun_SubcommandDispatches(t *testing.T) {
	b := sampleBuilder(t)
	require.NoError(t, b.Register("exit_violently", linetypes.ActionSpec{
		Handler: func(c linetypes.Console, arg string) error {
			c.Write("slamming the door " + arg)
			return nil
		},
	}))
	sess, buf := newTestSession(t, b, nil, "exit violently now", "exit")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "slamming the door now")
}

func TestRun_HelpBuiltinListsDocumentedActions(t *testing.T) {
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "help", "exit")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "simple -- A simple test action")
	assert.Contains(t, buf.String(), "Undocumented commands:")
}

func TestRun_HelpShortcutAndNoHelp(t *testing.T) {
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "? simple", "? add", "exit")

	require.NoError(t, sess.Run(nil))
	lines := buf.Lines()
	assert.Contains(t, lines, "simple -- A simple test action")
	assert.Contains(t, lines, "No help for command 'add'")
}

func TestRun_PrecmdRewritesLine(t *testing.T) {
	hooks := Hooks{
		Precmd: func(_ *Session, line string) string {
			if line == "go" {
				return "simple"
			}
			return line
		},
	}
	sess, buf := newTestSession(t, sampleBuilder(t), []Option{WithHooks(hooks)}, "go")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "simple!")
}

func TestRun_LifecycleHookOrder(t *testing.T) {
	var order []string
	hooks := Hooks{
		Setup:    func(*Session) { order = append(order, "setup") },
		Preloop:  func(*Session) { order = append(order, "preloop") },
		Postcmd: func(_ *Session, err error) error {
			order = append(order, "postcmd")
			return err
		},
		Postloop: func(*Session) { order = append(order, "postloop") },
	}
	sess, _ := newTestSession(t, sampleBuilder(t), []Option{WithHooks(hooks)}, "simple")

	require.NoError(t, sess.Run(nil))
	// EOF after the scripted line adds no postcmd entry.
	assert.Equal(t, []string{"setup", "preloop", "postcmd", "postloop"}, order)
}

func TestRun_NiladicDropsExtraInput(t *testing.T) {
	sess, buf := newTestSession(t, sampleBuilder(t), nil, "list with junk arguments")

	require.NoError(t, sess.Run(nil))
	assert.Contains(t, buf.Lines(), "listing")
}

func TestNew_SessionHasUniqueID(t *testing.T) {
	a, _ := newTestSession(t, sampleBuilder(t), nil)
	b, _ := newTestSession(t, sampleBuilder(t), nil)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCompletions_DefaultPrefixMatch(t *testing.T) {
	sess, _ := newTestSession(t, sampleBuilder(t), nil)

	assert.Equal(t, []string{"shell", "simple"}, sess.Completions("s"))
	assert.Equal(t, []string{"simple"}, sess.Completions("si"))
}
