package intcode

import "fmt"

type Opcode int64

const (
	OpAdd           Opcode = 1
	OpMultiply      Opcode = 2
	OpInput         Opcode = 3
	OpOutput        Opcode = 4
	OpJumpIfTrue    Opcode = 5
	OpJumpIfFalse   Opcode = 6
	OpLessThan      Opcode = 7
	OpEquals        Opcode = 8
	OpAdjustRelBase Opcode = 9
	OpHalt          Opcode = 99
)

type opInfo struct {
	name  string
	width int64
}

var opcodes = map[Opcode]opInfo{
	OpAdd:           {"ADD", 4},
	OpMultiply:      {"MUL", 4},
	OpInput:         {"IN", 2},
	OpOutput:        {"OUT", 2},
	OpJumpIfTrue:    {"JMP_IF_TRUE", 3},
	OpJumpIfFalse:   {"JMP_IF_FALSE", 3},
	OpLessThan:      {"LT", 4},
	OpEquals:        {"EQ", 4},
	OpAdjustRelBase: {"ADJ_RB", 2},
	OpHalt:          {"HALT", 1},
}

func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "UNKNOWN"
}

func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Width is the number of cells the instruction occupies, opcode word
// included. Unknown opcodes have width 0.
func (op Opcode) Width() int64 {
	return opcodes[op].width
}

// Mode is the addressing mode of one parameter.
type Mode int64

const (
	Position  Mode = 0
	Immediate Mode = 1
	Relative  Mode = 2
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("mode(%d)", int64(m))
}

func (m Mode) Valid() bool {
	return m == Position || m == Immediate || m == Relative
}

// Instruction is a decoded instruction word. Modes[0] belongs to the first
// parameter.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Decode splits an instruction word into its opcode (the low two decimal
// digits) and the modes of up to three parameters, taken from the
// remaining digits least significant first. Decode never fails; the
// opcode and modes are validated when the instruction executes.
func Decode(word int64) Instruction {
	ins := Instruction{Op: Opcode(word % 100)}
	digits := word / 100
	for i := range ins.Modes {
		ins.Modes[i] = Mode(digits % 10)
		digits /= 10
	}
	return ins
}
