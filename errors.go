package main

import (
	"errors"
	"fmt"
	"strings"

	"hadydotai/intcode/intcode"
)

// formatParseError renders a program text error with the offending line and
// its neighbours, pointing at the column.
func formatParseError(err *intcode.ParseError, source string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\x1b[1;31msyntax error\x1b[0m: %s\n", err.Message)

	lines := strings.Split(source, "\n")
	if err.Pos.Line > 0 && err.Pos.Line <= len(lines) {
		lineNum := err.Pos.Line
		line := lines[lineNum-1]

		fmt.Fprintf(&b, "\x1b[1;34m-->\x1b[0m %s:%d:%d\n", err.Pos.Filename, err.Pos.Line, err.Pos.Column)

		if lineNum > 1 {
			fmt.Fprintf(&b, "%4d | %s\n", lineNum-1, clip(lines[lineNum-2], 0))
		}
		fmt.Fprintf(&b, "%4d | %s\n", lineNum, clip(line, err.Pos.Column))

		column := err.Pos.Column
		if column > clipWidth {
			column = clipWidth
		}
		if column < 1 {
			column = 1
		}
		fmt.Fprintf(&b, "     | %s\x1b[1;31m^\x1b[0m\n", strings.Repeat(" ", column-1))

		if lineNum < len(lines) {
			fmt.Fprintf(&b, "%4d | %s\n", lineNum+1, clip(lines[lineNum], 0))
		}
	}

	fmt.Fprintf(&b, "\n\x1b[1;32mhelp\x1b[0m: programs are comma separated integers, e.g. 1,0,0,0,99\n")
	return b.String()
}

// Program files are usually one very long line, keep the snippet readable.
const clipWidth = 60

// clip shortens line so that column stays visible at the same offset.
func clip(line string, column int) string {
	if len(line) <= clipWidth {
		return line
	}
	if column > len(line) {
		column = len(line)
	}
	if column <= clipWidth {
		return line[:clipWidth] + "..."
	}
	start := column - clipWidth
	return "..." + line[start+3:column] + "..."
}

// describeMachineError adds the failing instruction to a machine error.
func describeMachineError(state intcode.State, err error) error {
	var merr *intcode.Error
	if !errors.As(err, &merr) || merr.Pointer < 0 {
		return err
	}
	d, derr := state.Disassemble(merr.Pointer)
	if derr != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return fmt.Errorf("execution failed at &%d (%s): %w", d.Addr, d.Text, err)
}
