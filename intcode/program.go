package intcode

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the initial contents of memory.
type Program []int64

var (
	programLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Punct", Pattern: `,`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	programParser = participle.MustBuild[listing](
		participle.Lexer(programLexer),
		participle.Elide("Whitespace"),
	)
)

type listing struct {
	Cells []*cell `@@ ( "," @@ )*`
}

type cell struct {
	Pos   lexer.Position
	Value string `@Int`
}

type ParseError struct {
	Pos     lexer.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ParseProgram reads comma separated signed decimal integers.
func ParseProgram(filename, text string) (Program, error) {
	parsed, err := programParser.ParseString(filename, text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &ParseError{Pos: perr.Position(), Message: perr.Message()}
		}
		return nil, err
	}
	if len(parsed.Cells) == 0 {
		return nil, &ParseError{
			Pos:     lexer.Position{Filename: filename, Line: 1, Column: 1},
			Message: "program is empty",
		}
	}

	program := make(Program, len(parsed.Cells))
	for i, c := range parsed.Cells {
		// Always base 10, so "010" is ten.
		v, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return nil, &ParseError{Pos: c.Pos, Message: fmt.Sprintf("integer %s does not fit in 64 bits", c.Value)}
		}
		program[i] = v
	}
	return program, nil
}

func LoadProgramFile(path string) (Program, string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read program file %s: %w", path, err)
	}
	program, err := ParseProgram(path, string(source))
	return program, string(source), err
}
