// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_PrintStripsQuotes(t *testing.T) {
	c, hook := newTestConsole(t, nil)

	var got []string
	_, err := Register1(c.Registry(), "say", "", func(s string) { got = append(got, s) })
	require.NoError(t, err)

	require.NoError(t, c.Exec(`say "Hello, World!"`))
	assert.Equal(t, []string{"Hello, World!"}, got)

	require.NoError(t, c.Exec(`print "Hello, World!"`))
	assert.Equal(t, "Hello, World!", hook.LastEntry().Message)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}

func TestExec_CoercesEveryArgument(t *testing.T) {
	c, _ := newTestConsole(t, nil)

	var (
		gotInt   int
		gotFloat float64
		gotStr   string
		gotBools [3]bool
	)
	cmd := NewCommand("some_function", "",
		[]Kind{KindInt, KindFloat64, KindString, KindBool, KindBool, KindBool},
		func(args []any) error {
			gotInt = args[0].(int)
			gotFloat = args[1].(float64)
			gotStr = args[2].(string)
			for i := range gotBools {
				gotBools[i] = args[3+i].(bool)
			}
			return nil
		})
	require.NoError(t, c.Registry().Register(cmd))

	require.NoError(t, c.Exec(`some_function 2 2.0 'test' true on off`))
	assert.Equal(t, 2, gotInt)
	assert.Equal(t, 2.0, gotFloat)
	assert.Equal(t, "test", gotStr)
	assert.Equal(t, [3]bool{true, true, false}, gotBools)
}

func TestExec_SelectsOverloadByArity(t *testing.T) {
	c, _ := newTestConsole(t, nil)

	var called string
	_, err := Register1(c.Registry(), "spawn", "", func(string) { called = "one" })
	require.NoError(t, err)
	_, err = Register2(c.Registry(), "spawn", "", func(string, int) { called = "two" })
	require.NoError(t, err)
	_, err = Register0(c.Registry(), "spawn", "", func() { called = "zero" })
	require.NoError(t, err)

	for line, want := range map[string]string{
		"spawn":         "zero",
		"spawn orc":     "one",
		"spawn orc 3":   "two",
		`spawn "a b" 1`: "two",
	} {
		called = ""
		require.NoError(t, c.Exec(line), line)
		assert.Equal(t, want, called, line)
	}
}

func TestExec_ArityMismatch(t *testing.T) {
	c, hook := newTestConsole(t, nil)

	calls := 0
	_, err := Register1(c.Registry(), "known_cmd", "", func(int) { calls++ })
	require.NoError(t, err)

	err = c.Exec("known_cmd a b")
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.False(t, errors.Is(err, ErrCoercion))
	assert.Zero(t, calls)
	assert.Equal(t, "'known_cmd' command exists, but invalid arguments (2) were given.", hook.LastEntry().Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestExec_CoercionFailureAbortsBeforeInvoke(t *testing.T) {
	c, hook := newTestConsole(t, nil)

	calls := 0
	_, err := Register2(c.Registry(), "add", "", func(int, int) { calls++ })
	require.NoError(t, err)

	err = c.Exec("add 1 x")
	assert.ErrorIs(t, err, ErrCoercion)
	assert.Zero(t, calls)
	assert.Equal(t, "Invalid parameter type were given for 'x' expected type of 'Int'.", hook.LastEntry().Message)
}

func TestExec_HandlerError(t *testing.T) {
	c, hook := newTestConsole(t, nil)
	boom := errors.New("boom")
	require.NoError(t, c.Registry().Register(NewCommand("fail", "", nil, func([]any) error { return boom })))

	err := c.Exec("fail")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Command 'fail' could not be executed: boom", hook.LastEntry().Message)
}

func TestExec_HandlerPanicPropagates(t *testing.T) {
	c, _ := newTestConsole(t, nil)
	_, err := Register0(c.Registry(), "explode", "", func() { panic("kaboom") })
	require.NoError(t, err)

	assert.PanicsWithValue(t, "kaboom", func() { c.Exec("explode") })
}

func TestExec_EmptyLine(t *testing.T) {
	c, _ := newTestConsole(t, newFakeStore())
	for _, line := range []string{"", "   "} {
		err := c.Exec(line)
		assert.ErrorIs(t, err, ErrUnknownCommand)
	}
	assert.False(t, c.Execute(""))
}

// ===== VARIABLE FALLBACK =====

func TestExec_VariableRead(t *testing.T) {
	fly := flyVar()
	c, hook := newTestConsole(t, newFakeStore(fly))

	require.NoError(t, c.Exec("cheats.fly"))
	assert.Equal(t, "cheats.fly false (default: false)", hook.LastEntry().Message)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Zero(t, fly.sets)
}

func TestExec_VariableWrite(t *testing.T) {
	fly := flyVar()
	c, hook := newTestConsole(t, newFakeStore(fly))

	require.NoError(t, c.Exec("cheats.fly on"))
	assert.Equal(t, true, fly.value)

	require.NoError(t, c.Exec("cheats.fly"))
	assert.Equal(t, "cheats.fly true (default: false)", hook.LastEntry().Message)

	require.NoError(t, c.Exec("cheats.fly 0"))
	assert.Equal(t, false, fly.value)
}

func TestExec_VariableWriteCoercionFailure(t *testing.T) {
	fly := flyVar()
	c, hook := newTestConsole(t, newFakeStore(fly))

	err := c.Exec("cheats.fly maybe")
	assert.ErrorIs(t, err, ErrCoercion)
	assert.Equal(t, false, fly.value)
	assert.Zero(t, fly.sets)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestExec_VariableSetRejected(t *testing.T) {
	rejected := errors.New("out of range")
	speed := &fakeVar{name: "cheats.speed", kind: KindFloat32, value: float32(1), def: float32(1), setErr: rejected}
	c, hook := newTestConsole(t, newFakeStore(speed))

	err := c.Exec("cheats.speed 99")
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, float32(1), speed.value)
	assert.Equal(t, "Could not set 'cheats.speed': out of range", hook.LastEntry().Message)
}

func TestExec_NullVariableWriteIsNoop(t *testing.T) {
	marker := &fakeVar{name: "marker", kind: KindNull}
	c, _ := newTestConsole(t, newFakeStore(marker))

	require.NoError(t, c.Exec("marker anything"))
	assert.Zero(t, marker.sets)
}

func TestExec_VariableReadFormatsValues(t *testing.T) {
	name := &fakeVar{name: "player.name", kind: KindString, value: "Alice", def: "Player"}
	marker := &fakeVar{name: "marker", kind: KindNull}
	c, hook := newTestConsole(t, newFakeStore(name, marker))

	require.NoError(t, c.Exec("player.name"))
	assert.Equal(t, "player.name alice (default: player)", hook.LastEntry().Message)

	require.NoError(t, c.Exec("marker"))
	assert.Equal(t, "marker null (default: null)", hook.LastEntry().Message)
}

func TestExec_VariableTooManyArgs(t *testing.T) {
	fly := flyVar()
	c, hook := newTestConsole(t, newFakeStore(fly))

	err := c.Exec("cheats.fly on off")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Zero(t, fly.sets)
	assert.Equal(t, "Unknown command 'cheats.fly'", hook.LastEntry().Message)
}

func TestExec_UnknownName(t *testing.T) {
	c, hook := newTestConsole(t, newFakeStore(flyVar()))

	err := c.Exec("cheats.walk")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, "Unknown command 'cheats.walk'", hook.LastEntry().Message)

	err = c.Exec("cheats.walk on")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestExec_NilStore(t *testing.T) {
	c, _ := newTestConsole(t, nil)
	assert.ErrorIs(t, c.Exec("cheats.walk"), ErrUnknownCommand)
	assert.ErrorIs(t, c.Exec("cheats.walk on"), ErrUnknownCommand)
}

// ===== AUTO-CORRECTION =====

func TestExec_SuggestionSkipsVariables(t *testing.T) {
	store := newFakeStore(flyVar())
	c, hook := newTestConsole(t, store)
	_, err := Register0(c.Registry(), "nonexistent", "", func() {})
	require.NoError(t, err)

	err = c.Exec("nonexistent_cmd")

	var serr *SuggestionError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "nonexistent", serr.Suggestion)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Zero(t, store.lookups)
	assert.Equal(t, "Invalid command syntax. You probably wanted to use nonexistent", hook.LastEntry().Message)
}

func TestExec_SuggestionShadowsCloseVariable(t *testing.T) {
	hlep := &fakeVar{name: "hlep", kind: KindInt, value: 1, def: 0}
	c, hook := newTestConsole(t, newFakeStore(hlep))

	err := c.Exec("hlep")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, "Invalid command syntax. You probably wanted to use help", hook.LastEntry().Message)

	c.SetAutoCorrection(false)
	require.NoError(t, c.Exec("hlep"))
	assert.Equal(t, "hlep 1 (default: 0)", hook.LastEntry().Message)

	require.NoError(t, c.Exec("hlep 5"))
	assert.Equal(t, 5, hlep.value)
}

func TestExec_AutoCorrectionDisabled(t *testing.T) {
	c, hook := newTestConsole(t, newFakeStore())
	c.SetAutoCorrection(false)
	assert.False(t, c.AutoCorrection())

	err := c.Exec("hlep")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	var serr *SuggestionError
	assert.False(t, errors.As(err, &serr))
	assert.Equal(t, "Unknown command 'hlep'", hook.LastEntry().Message)
}

// ===== BUILT-INS =====

func TestBuiltins_Registered(t *testing.T) {
	c, _ := newTestConsole(t, nil)
	assert.Equal(t, []string{"help", "find", "print", "warning", "error", "quit"}, c.Registry().Names())
}

func TestBuiltins_Help(t *testing.T) {
	c, hook := newTestConsole(t, nil)
	require.NoError(t, c.Exec("help"))

	msgs := messages(hook)
	require.Len(t, msgs, c.Registry().Len())
	assert.Equal(t, "help   : Prints all registered commands", msgs[0])
	assert.Equal(t, "warning: Prints given warning string to the log.", msgs[3])
}

func TestBuiltins_LogLevels(t *testing.T) {
	c, hook := newTestConsole(t, nil)

	require.NoError(t, c.Exec(`warning "low fuel"`))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "low fuel", hook.LastEntry().Message)

	require.NoError(t, c.Exec("error engine"))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "engine", hook.LastEntry().Message)
}

func TestBuiltins_Find(t *testing.T) {
	level := &fakeVar{name: "log.level", description: "Logging level", kind: KindString, value: "info", def: "info"}
	c, hook := newTestConsole(t, newFakeStore(level, flyVar()))

	want := []string{
		"error: Prints given error string to the log.",
		"log.level: Logging level",
		"print: Prints given string to the log.",
		"warning: Prints given warning string to the log.",
	}
	assert.Equal(t, want, c.FindLines("log"))

	require.NoError(t, c.Exec("find log"))
	assert.Equal(t, want, messages(hook))

	assert.Equal(t, []string{"cheats.fly: Lets the player fly"}, c.FindLines("fly"))
	assert.Empty(t, c.FindLines("zzz"))
}

func TestBuiltins_FindColored(t *testing.T) {
	c, _ := newTestConsole(t, nil)
	c.SetColoredFind(true)
	assert.True(t, c.ColoredFind())

	lines := c.FindLines("quit")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "quit")
	assert.Contains(t, lines[0], "Exits the console.")
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "abc", highlight("abc", ""))
	assert.Equal(t, "none", highlight("none", "x"))
	assert.Equal(t, 2, strings.Count(highlight("abab", "b"), "b"))
}

func TestBuiltins_Quit(t *testing.T) {
	c, hook := newTestConsole(t, nil)

	require.NoError(t, c.Exec("quit"))
	assert.Equal(t, "Nothing to quit.", hook.LastEntry().Message)

	quits := 0
	c.SetQuitHandler(func() { quits++ })
	require.NoError(t, c.Exec("quit"))
	assert.Equal(t, 1, quits)
}

func TestConsole_Accessors(t *testing.T) {
	store := newFakeStore()
	c := New(store, nil)
	assert.Same(t, store, c.Variables())
	assert.NotNil(t, c.Registry())
	assert.True(t, c.AutoCorrection())
	assert.True(t, c.ColoredFind())
	assert.False(t, c.Execute(""))
}
