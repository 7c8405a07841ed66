package intcode

import (
	"hadydotai/intcode/logging"
)

// Step executes the instruction at the pointer and returns the next state.
// A state that is not Running comes back unchanged. On error the returned
// state is s itself; nothing of the failed instruction is applied.
func Step(s State) (State, error) {
	if s.status != Running {
		return s, nil
	}

	word, err := s.memory.Read(s.pointer)
	if err != nil {
		return s, atPointer(err, s.pointer)
	}
	ins := Decode(word)

	var next State
	switch ins.Op {
	case OpAdd:
		next, err = s.executeArith(ins, func(a, b int64) int64 { return a + b })
	case OpMultiply:
		next, err = s.executeArith(ins, func(a, b int64) int64 { return a * b })
	case OpInput:
		next, err = s.executeInput(ins)
	case OpOutput:
		next, err = s.executeOutput(ins)
	case OpJumpIfTrue:
		next, err = s.executeJump(ins, func(v int64) bool { return v != 0 })
	case OpJumpIfFalse:
		next, err = s.executeJump(ins, func(v int64) bool { return v == 0 })
	case OpLessThan:
		next, err = s.executeCompare(ins, func(a, b int64) bool { return a < b })
	case OpEquals:
		next, err = s.executeCompare(ins, func(a, b int64) bool { return a == b })
	case OpAdjustRelBase:
		next, err = s.executeAdjustRelBase(ins)
	case OpHalt:
		next, err = s.executeHalt(ins)
	default:
		return s, newError(ErrorUnknownOpcode, s.pointer, "opcode %d in word %d", int64(ins.Op), word)
	}
	if err != nil {
		return s, atPointer(err, s.pointer)
	}
	return next, nil
}

func (s State) trace(ins Instruction, msg string, args ...any) {
	if !logging.Enabled(logging.LogLevelDebug) {
		return
	}
	args = append([]any{"ip", s.pointer, "rb", s.relativeBase, "op", ins.Op}, args...)
	logging.Log(logging.LogLevelDebug, msg, args...)
}

// store writes value to addr and moves past the instruction.
func (s State) store(ins Instruction, addr, value int64) (State, error) {
	mem, err := s.memory.Write(addr, value)
	if err != nil {
		return s, err
	}
	s.memory = mem
	s.pointer += ins.Op.Width()
	return s, nil
}

func (s State) executeArith(ins Instruction, fn func(a, b int64) int64) (State, error) {
	args, err := s.operands(ins, 2)
	if err != nil {
		return s, err
	}
	addr, err := s.target(ins, 3)
	if err != nil {
		return s, err
	}
	result := fn(args[0], args[1])
	s.trace(ins, "arithmetic", "x", args[0], "y", args[1], "result", result, "addr", addr)
	return s.store(ins, addr, result)
}

func (s State) executeCompare(ins Instruction, fn func(a, b int64) bool) (State, error) {
	args, err := s.operands(ins, 2)
	if err != nil {
		return s, err
	}
	addr, err := s.target(ins, 3)
	if err != nil {
		return s, err
	}
	var result int64
	if fn(args[0], args[1]) {
		result = 1
	}
	s.trace(ins, "compare", "x", args[0], "y", args[1], "result", result, "addr", addr)
	return s.store(ins, addr, result)
}

func (s State) executeInput(ins Instruction) (State, error) {
	if s.inputCursor >= len(s.inputs) {
		s.trace(ins, "waiting for input")
		s.status = WaitingForInput
		return s, nil
	}
	addr, err := s.target(ins, 1)
	if err != nil {
		return s, err
	}
	value := s.inputs[s.inputCursor]
	s.trace(ins, "input", "value", value, "addr", addr)
	next, err := s.store(ins, addr, value)
	if err != nil {
		return s, err
	}
	next.inputCursor++
	return next, nil
}

func (s State) executeOutput(ins Instruction) (State, error) {
	value, err := s.operand(ins, 1)
	if err != nil {
		return s, err
	}
	s.trace(ins, "output", "value", value)
	s.outputs = appendClipped(s.outputs, value)
	s.pointer += ins.Op.Width()
	return s, nil
}

func (s State) executeJump(ins Instruction, taken func(v int64) bool) (State, error) {
	cond, err := s.operand(ins, 1)
	if err != nil {
		return s, err
	}
	if !taken(cond) {
		s.trace(ins, "jump not taken", "cond", cond)
		s.pointer += ins.Op.Width()
		return s, nil
	}
	dest, err := s.operand(ins, 2)
	if err != nil {
		return s, err
	}
	s.trace(ins, "jump", "cond", cond, "dest", dest)
	s.pointer = dest
	return s, nil
}

func (s State) executeAdjustRelBase(ins Instruction) (State, error) {
	offset, err := s.operand(ins, 1)
	if err != nil {
		return s, err
	}
	s.trace(ins, "adjust relative base", "offset", offset)
	base, ok := addInt64(s.relativeBase, offset)
	if !ok {
		return s, newError(ErrorOutOfRangeAddress, s.pointer,
			"relative base %d%+d overflows", s.relativeBase, offset)
	}
	s.relativeBase = base
	s.pointer += ins.Op.Width()
	return s, nil
}

func (s State) executeHalt(ins Instruction) (State, error) {
	s.trace(ins, "halt")
	s.status = Halted
	return s, nil
}
