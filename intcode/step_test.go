package intcode

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()
	ins := Decode(1002)
	assert.Equal(t, OpMultiply, ins.Op)
	assert.Equal(t, [3]Mode{Position, Immediate, Position}, ins.Modes)

	ins = Decode(21101)
	assert.Equal(t, OpAdd, ins.Op)
	assert.Equal(t, [3]Mode{Immediate, Immediate, Relative}, ins.Modes)

	ins = Decode(99)
	assert.Equal(t, OpHalt, ins.Op)
	assert.Equal(t, [3]Mode{}, ins.Modes)
}

func TestStepErrors(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		Name     string
		Program  Program
		Inputs   []int64
		Sentinel error
		Kind     ErrorKind
		Pointer  int64
	}{
		{Name: "unknown opcode", Program: Program{1101, 1, 1, 0, 42}, Sentinel: ErrUnknownOpcode, Kind: ErrorUnknownOpcode, Pointer: 4},
		{Name: "negative word", Program: Program{-1}, Sentinel: ErrUnknownOpcode, Kind: ErrorUnknownOpcode, Pointer: 0},
		{Name: "immediate write target", Program: Program{11101, 1, 1, 0, 99}, Sentinel: ErrInvalidParameterMode, Kind: ErrorInvalidParameterMode, Pointer: 0},
		{Name: "immediate input target", Program: Program{103, 0, 99}, Inputs: []int64{1}, Sentinel: ErrInvalidParameterMode, Kind: ErrorInvalidParameterMode, Pointer: 0},
		{Name: "unknown read mode", Program: Program{304, 0, 99}, Sentinel: ErrInvalidParameterMode, Kind: ErrorInvalidParameterMode, Pointer: 0},
		{Name: "unknown write mode", Program: Program{30001, 0, 0, 0, 99}, Sentinel: ErrInvalidParameterMode, Kind: ErrorInvalidParameterMode, Pointer: 0},
		{Name: "read past end", Program: Program{4, 100, 99}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 0},
		{Name: "negative read", Program: Program{4, -1, 99}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 0},
		{Name: "write past end", Program: Program{1101, 1, 1, 8, 99}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 0},
		{Name: "negative relative write", Program: Program{109, -5, 203, 0, 99}, Inputs: []int64{1}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 2},
		{Name: "relative read overflows", Program: Program{109, math.MinInt64, 204, math.MinInt64, 99}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 2},
		{Name: "relative write overflows", Program: Program{109, math.MinInt64, 203, math.MinInt64, 99}, Inputs: []int64{1}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 2},
		{Name: "relative base overflows", Program: Program{109, math.MaxInt64, 109, 1, 99}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 2},
		{Name: "jump out of memory", Program: Program{1105, 1, 50, 99}, Sentinel: ErrOutOfRangeAddress, Kind: ErrorOutOfRangeAddress, Pointer: 50},
		{Name: "run off the end", Program: Program{1101, 0, 0, 0}, Sentinel: ErrUnknownOpcode, Kind: ErrorUnknownOpcode, Pointer: 4},
	}
	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			s, err := Load(tc.Program, 8)
			require.NoError(t, err)

			last, err := Run(s.WithInputs(tc.Inputs...))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.Sentinel)
			assert.Equal(t, Running, last.Status())

			var merr *Error
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, tc.Kind, merr.Kind)
			assert.Equal(t, tc.Pointer, merr.Pointer)
		})
	}
}

func TestLoadCapacityExceeded(t *testing.T) {
	t.Parallel()
	_, err := Load(Program{1, 0, 0, 0, 99}, 4)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	s, err := Load(Program{1, 0, 0, 0, 99}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Capacity())
}

func TestFailedStepLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	s, err := Load(Program{1101, 2, 2, 0, 42}, 8)
	require.NoError(t, err)

	s, err = Step(s)
	require.NoError(t, err)
	before := s.Memory()

	after, err := Step(s)
	require.ErrorIs(t, err, ErrUnknownOpcode)
	assert.Equal(t, s, after)
	assert.Equal(t, before, after.Memory())
	assert.Equal(t, int64(4), after.Pointer())
}

func TestWaitingForInputKeepsPointer(t *testing.T) {
	t.Parallel()
	s, err := Load(Program{104, 5, 3, 0, 99}, 8)
	require.NoError(t, err)

	s, err = Run(s)
	require.NoError(t, err)
	assert.Equal(t, WaitingForInput, s.Status())
	assert.Equal(t, int64(2), s.Pointer())
	assert.Equal(t, []int64{5}, s.Outputs())

	// Stepping a stopped machine is a no-op.
	again, err := Step(s)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestJumpNotTaken(t *testing.T) {
	t.Parallel()
	s, err := Load(Program{1105, 0, 50, 1106, 1, 50, 99}, 8)
	require.NoError(t, err)

	s, err = Step(s)
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Pointer())

	s, err = Step(s)
	require.NoError(t, err)
	assert.Equal(t, int64(6), s.Pointer())
}
