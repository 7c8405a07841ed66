package intcode

// raw returns the n-th (1-based) parameter cell of the current instruction.
func (s State) raw(n int) (int64, error) {
	return s.memory.Read(s.pointer + int64(n))
}

// relativeAddr offsets the relative base, failing rather than wrapping
// around when the sum does not fit in an int64.
func (s State) relativeAddr(offset int64) (int64, error) {
	sum, ok := addInt64(s.relativeBase, offset)
	if !ok {
		return 0, newError(ErrorOutOfRangeAddress, s.pointer,
			"relative address %d%+d overflows", s.relativeBase, offset)
	}
	return sum, nil
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// operand resolves the n-th parameter as an input value.
func (s State) operand(ins Instruction, n int) (int64, error) {
	raw, err := s.raw(n)
	if err != nil {
		return 0, err
	}
	switch mode := ins.Modes[n-1]; mode {
	case Position:
		return s.memory.Read(raw)
	case Immediate:
		return raw, nil
	case Relative:
		addr, err := s.relativeAddr(raw)
		if err != nil {
			return 0, err
		}
		return s.memory.Read(addr)
	default:
		return 0, newError(ErrorInvalidParameterMode, s.pointer,
			"parameter %d of %s has unknown mode %d", n, ins.Op, int64(mode))
	}
}

// target resolves the n-th parameter as the address an instruction writes
// to. Immediate mode names no address and is rejected.
func (s State) target(ins Instruction, n int) (int64, error) {
	raw, err := s.raw(n)
	if err != nil {
		return 0, err
	}
	switch mode := ins.Modes[n-1]; mode {
	case Position:
		return raw, nil
	case Relative:
		return s.relativeAddr(raw)
	case Immediate:
		return 0, newError(ErrorInvalidParameterMode, s.pointer,
			"parameter %d of %s is a write target and cannot be immediate", n, ins.Op)
	default:
		return 0, newError(ErrorInvalidParameterMode, s.pointer,
			"parameter %d of %s has unknown mode %d", n, ins.Op, int64(mode))
	}
}

// operands resolves the first count parameters as input values.
func (s State) operands(ins Instruction, count int) ([]int64, error) {
	values := make([]int64, count)
	for i := range values {
		v, err := s.operand(ins, i+1)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
