package main

import (
	"strings"
	"testing"

	"hadydotai/intcode/intcode"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
)

func TestFormatParseError(t *testing.T) {
	source := "1,0,\n0,?,99\n"
	err := &intcode.ParseError{
		Pos:     lexer.Position{Filename: "prog.txt", Line: 2, Column: 3},
		Message: `invalid input text "?,99\n"`,
	}

	got := formatParseError(err, source)
	assert.Contains(t, got, "prog.txt:2:3")
	assert.Contains(t, got, "   1 | 1,0,")
	assert.Contains(t, got, "   2 | 0,?,99")
	assert.Contains(t, got, "     |   \x1b[1;31m^")
}

func TestClipLongLines(t *testing.T) {
	line := strings.Repeat("1,", 100) + "x"

	assert.Equal(t, "short", clip("short", 3))
	assert.Equal(t, line[:clipWidth]+"...", clip(line, 10))

	clipped := clip(line, len(line))
	assert.Len(t, clipped, clipWidth+3)
	assert.True(t, strings.HasPrefix(clipped, "..."))
	assert.Equal(t, byte('x'), clipped[clipWidth-1])
}
