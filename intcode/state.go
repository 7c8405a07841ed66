package intcode

import (
	"fmt"
	"slices"
)

type Status int

const (
	Running Status = iota
	WaitingForInput
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForInput:
		return "waiting-for-input"
	case Halted:
		return "halted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Stopped reports whether no further instruction executes without outside
// help.
func (s Status) Stopped() bool {
	return s != Running
}

// State is one snapshot of a machine. It is a value: every operation that
// changes the machine returns a new State and the old one stays valid, so
// callers can branch many runs off one loaded program.
//
// Slices inside a State are shared between snapshots and must never be
// written through. Memory copies on write and the queues only grow through
// appendClipped.
type State struct {
	memory       Memory
	pointer      int64
	relativeBase int64
	inputs       []int64
	inputCursor  int
	outputs      []int64
	status       Status
}

// Load builds the initial state for program with the given memory capacity.
func Load(program Program, capacity int) (State, error) {
	mem, err := NewMemory(program, capacity)
	if err != nil {
		return State{}, err
	}
	return State{memory: mem, status: Running}, nil
}

func appendClipped(s []int64, values ...int64) []int64 {
	return append(slices.Clip(s), values...)
}

func (s State) Status() Status {
	return s.status
}

func (s State) Pointer() int64 {
	return s.pointer
}

func (s State) RelativeBase() int64 {
	return s.relativeBase
}

func (s State) Capacity() int {
	return s.memory.Len()
}

func (s State) ValueAt(addr int64) (int64, error) {
	return s.memory.Read(addr)
}

// Memory returns a copy of the memory image.
func (s State) Memory() []int64 {
	return s.memory.Cells()
}

// Outputs returns the whole output log.
func (s State) Outputs() []int64 {
	return slices.Clone(s.outputs)
}

// PendingInputs returns the queued inputs not yet consumed.
func (s State) PendingInputs() []int64 {
	return slices.Clone(s.inputs[s.inputCursor:])
}

// WithValueAt returns a copy of s whose memory holds value at addr. It is
// how drivers patch a loaded program before running a branch.
func (s State) WithValueAt(addr, value int64) (State, error) {
	mem, err := s.memory.Write(addr, value)
	if err != nil {
		return s, err
	}
	s.memory = mem
	return s, nil
}

// WithInputs returns a copy of s with values queued after any pending input.
// A machine waiting for input becomes runnable again.
func (s State) WithInputs(values ...int64) State {
	if s.status == Halted || len(values) == 0 {
		return s
	}
	s.inputs = appendClipped(s.inputs, values...)
	if s.status == WaitingForInput {
		s.status = Running
	}
	return s
}
