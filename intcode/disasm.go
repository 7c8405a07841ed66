package intcode

import (
	"fmt"
	"strings"
)

// Disassembly is the rendering of one instruction in memory.
type Disassembly struct {
	Addr  int64
	Width int64
	Op    Opcode
	Text  string
}

// writes maps opcodes to the parameter they store into.
var writes = map[Opcode]int{
	OpAdd:      3,
	OpMultiply: 3,
	OpInput:    1,
	OpLessThan: 3,
	OpEquals:   3,
}

func formatParam(mode Mode, raw int64) string {
	switch mode {
	case Position:
		return fmt.Sprintf("[%d]", raw)
	case Immediate:
		return fmt.Sprintf("#%d", raw)
	case Relative:
		if raw < 0 {
			return fmt.Sprintf("[rb%d]", raw)
		}
		return fmt.Sprintf("[rb+%d]", raw)
	}
	return fmt.Sprintf("?%d:%d", int64(mode), raw)
}

// Disassemble renders the instruction at addr. Words that are not valid
// instructions, or whose parameters run past the end of memory, render as
// a single DATA cell so a listing can walk over data.
func (s State) Disassemble(addr int64) (Disassembly, error) {
	word, err := s.memory.Read(addr)
	if err != nil {
		return Disassembly{}, err
	}
	data := Disassembly{Addr: addr, Width: 1, Text: fmt.Sprintf("DATA %d", word)}

	ins := Decode(word)
	if !ins.Op.Valid() || addr+ins.Op.Width() > int64(s.memory.Len()) {
		return data, nil
	}

	var b strings.Builder
	b.WriteString(ins.Op.String())
	for n := 1; n < int(ins.Op.Width()); n++ {
		raw, _ := s.memory.Read(addr + int64(n))
		switch {
		case writes[ins.Op] == n:
			b.WriteString(" -> ")
		case n == 1:
			b.WriteString(" ")
		default:
			b.WriteString(", ")
		}
		b.WriteString(formatParam(ins.Modes[n-1], raw))
	}
	return Disassembly{Addr: addr, Width: ins.Op.Width(), Op: ins.Op, Text: b.String()}, nil
}

// DisassembleRange renders up to count instructions starting at addr,
// stopping early at the end of memory.
func (s State) DisassembleRange(addr int64, count int) ([]Disassembly, error) {
	var out []Disassembly
	for i := 0; i < count && addr < int64(s.memory.Len()); i++ {
		d, err := s.Disassemble(addr)
		if err != nil {
			return out, err
		}
		out = append(out, d)
		addr += d.Width
	}
	return out, nil
}
