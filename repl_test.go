package main

import (
	"bytes"
	"testing"

	"hadydotai/intcode/intcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestREPL(t *testing.T, program intcode.Program, maxStates int) (*REPL, *bytes.Buffer) {
	t.Helper()
	s, err := intcode.Load(program, 32)
	require.NoError(t, err)
	var buf bytes.Buffer
	return NewREPL(s, &buf, maxStates), &buf
}

func TestREPLStepAndBack(t *testing.T) {
	// Output 1, read into 20, output it, halt.
	r, buf := newTestREPL(t, intcode.Program{104, 1, 3, 20, 4, 20, 99}, 100)

	r.exec("step")
	assert.Contains(t, buf.String(), "\033[1;32moutput:\033[0m 1\n")
	assert.Equal(t, int64(2), r.current().Pointer())

	r.exec("step")
	assert.Equal(t, intcode.WaitingForInput, r.current().Status())
	assert.Equal(t, int64(2), r.current().Pointer())

	buf.Reset()
	r.exec("step")
	assert.Contains(t, buf.String(), "Program is waiting-for-input")

	r.exec("back 2")
	assert.Equal(t, int64(0), r.current().Pointer())
	assert.Empty(t, r.current().Outputs())

	r.exec("back")
	assert.Len(t, r.history, 1, "back stops at the initial state")
}

func TestREPLInputAndContinue(t *testing.T) {
	r, buf := newTestREPL(t, intcode.Program{104, 1, 3, 20, 4, 20, 99}, 100)

	r.exec("continue")
	require.Equal(t, intcode.WaitingForInput, r.current().Status())

	r.exec("input 42")
	assert.Contains(t, buf.String(), "Queued 1 input(s)")
	assert.Equal(t, intcode.Running, r.current().Status())

	r.exec("c")
	assert.Equal(t, intcode.Halted, r.current().Status())
	assert.Equal(t, []int64{1, 42}, r.current().Outputs())

	buf.Reset()
	r.exec("out")
	assert.Equal(t, "Outputs: [1 42]\n", buf.String())

	buf.Reset()
	r.exec("input 1")
	assert.Contains(t, buf.String(), "Program has halted")

	r.exec("restart")
	assert.Len(t, r.history, 1)
	assert.Equal(t, int64(0), r.current().Pointer())
}

func TestREPLBreakpoint(t *testing.T) {
	r, buf := newTestREPL(t, intcode.Program{104, 1, 104, 2, 104, 3, 99}, 100)

	r.exec("break 4")
	assert.Contains(t, buf.String(), "Breakpoint set at &4")

	r.exec("continue")
	assert.Contains(t, buf.String(), "Breakpoint at &4")
	assert.Equal(t, int64(4), r.current().Pointer())
	assert.Equal(t, []int64{1, 2}, r.current().Outputs())

	r.exec("break 4")
	assert.Contains(t, buf.String(), "Breakpoint cleared at &4")
	r.exec("continue")
	assert.Equal(t, intcode.Halted, r.current().Status())
}

func TestREPLInspect(t *testing.T) {
	r, buf := newTestREPL(t, intcode.Program{1002, 4, 3, 4, 33}, 100)

	r.exec("mem 3 2")
	assert.Equal(t, "0003: 4\n0004: 33\n", buf.String())

	buf.Reset()
	r.exec("dis 0 1")
	assert.Contains(t, buf.String(), "0000: MUL [4], #3 -> [4]")

	buf.Reset()
	r.exec("mem 40")
	assert.Contains(t, buf.String(), "address out of range")

	buf.Reset()
	r.exec("state")
	assert.Contains(t, buf.String(), "Status: \"running\"")
	assert.Contains(t, buf.String(), "Capacity: 32")

	buf.Reset()
	r.exec("frobnicate")
	assert.Contains(t, buf.String(), "Unknown command: frobnicate")

	assert.True(t, r.exec("quit"))
	assert.False(t, r.exec(""))
}

func TestREPLMachineError(t *testing.T) {
	r, buf := newTestREPL(t, intcode.Program{1101, 1, 1, 0, 42}, 100)

	r.exec("continue")
	assert.Contains(t, buf.String(), "unknown opcode")
	assert.Equal(t, int64(4), r.current().Pointer())
	assert.Equal(t, intcode.Running, r.current().Status())
}

func TestREPLHistoryBound(t *testing.T) {
	r, _ := newTestREPL(t, intcode.Program{104, 1, 104, 2, 104, 3, 99}, 2)

	r.exec("step 3")
	assert.Len(t, r.history, 2)
	assert.Equal(t, int64(6), r.current().Pointer())

	r.exec("back 5")
	assert.Equal(t, int64(4), r.current().Pointer())
}

func TestCompleter(t *testing.T) {
	line := []rune("co")
	matches, length := completer{}.Do(line, len(line))
	assert.Equal(t, 2, length)
	assert.Equal(t, [][]rune{[]rune("ntinue")}, matches)
}
