package intcode

import "slices"

// DefaultCapacity is the memory size machines get unless told otherwise.
const DefaultCapacity = 2048

// Memory is a fixed-capacity integer store. It is never modified in place:
// Write hands back a new Memory and leaves the receiver untouched, so any
// number of states can share one image safely.
type Memory struct {
	cells []int64
}

// NewMemory copies program into a zero-padded image of the given capacity.
func NewMemory(program Program, capacity int) (Memory, error) {
	if len(program) > capacity {
		return Memory{}, newError(ErrorCapacityExceeded, -1,
			"program has %d cells, memory holds %d", len(program), capacity)
	}
	cells := make([]int64, capacity)
	copy(cells, program)
	return Memory{cells: cells}, nil
}

func (m Memory) Len() int {
	return len(m.cells)
}

func (m Memory) check(addr int64) error {
	if addr < 0 || addr >= int64(len(m.cells)) {
		return newError(ErrorOutOfRangeAddress, -1,
			"address %d outside memory of %d cells", addr, len(m.cells))
	}
	return nil
}

func (m Memory) Read(addr int64) (int64, error) {
	if err := m.check(addr); err != nil {
		return 0, err
	}
	return m.cells[addr], nil
}

func (m Memory) Write(addr, value int64) (Memory, error) {
	if err := m.check(addr); err != nil {
		return m, err
	}
	cells := slices.Clone(m.cells)
	cells[addr] = value
	return Memory{cells: cells}, nil
}

// Cells returns a copy of the whole image.
func (m Memory) Cells() []int64 {
	return slices.Clone(m.cells)
}
