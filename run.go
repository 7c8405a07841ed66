package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"

	"github.com/chzyer/readline"
)

type RunCommand struct {
	Inputs      []int64         `short:"i" long:"input" description:"Queue an input value, repeat for more"`
	Set         map[int64]int64 `short:"s" long:"set" description:"Patch memory before running, as ADDR=VALUE, repeat for more" key-value-delimiter:"="`
	Peek        []int64         `short:"p" long:"peek" description:"Print the memory cell at ADDR once the program stops, repeat for more"`
	Interactive bool            `short:"I" long:"interactive" description:"Prompt for more input whenever the program waits for it"`
	Args        struct {
		ProgramFile string `positional-arg-name:"PROGRAM-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var (
	runCommand RunCommand
	stdout     io.Writer = os.Stdout
)

// loadState reads a program file into a fresh machine and applies patches.
func loadState(path string, patches map[int64]int64) (intcode.State, error) {
	program, source, err := intcode.LoadProgramFile(path)
	if err != nil {
		var perr *intcode.ParseError
		if errors.As(err, &perr) {
			return intcode.State{}, errors.New(formatParseError(perr, source))
		}
		return intcode.State{}, err
	}

	state, err := intcode.Load(program, opts.Memory)
	if err != nil {
		return intcode.State{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	for addr, value := range patches {
		state, err = state.WithValueAt(addr, value)
		if err != nil {
			return intcode.State{}, fmt.Errorf("failed to patch &%d: %w", addr, err)
		}
		logging.Log(logging.LogLevelDebug, "Patched memory", "addr", addr, "value", value)
	}
	logging.Log(logging.LogLevelInfo, "Loaded program", "file", path, "cells", len(program), "memory", state.Capacity())
	return state, nil
}

// parseInputLine accepts integers separated by commas and/or spaces.
func parseInputLine(line string) ([]int64, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) == 0 {
		return nil, nil
	}
	values, err := intcode.ParseProgram("input", strings.Join(fields, ","))
	if err != nil {
		return nil, fmt.Errorf("not a list of integers: %q", line)
	}
	return values, nil
}

// inputPrompt reads more program input from the terminal.
type inputPrompt struct {
	rl *readline.Instance
}

func newInputPrompt() (*inputPrompt, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[33minput>\033[0m ",
		HistoryFile:     cfg.Debugger.HistoryFile,
		HistoryLimit:    cfg.Debugger.HistoryLimit,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal prompt: %w", err)
	}
	return &inputPrompt{rl: rl}, nil
}

func (p *inputPrompt) read() ([]int64, error) {
	for {
		line, err := p.rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			return nil, fmt.Errorf("input aborted: %w", err)
		}
		values, err := parseInputLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\033[31m%v\033[0m\n", err)
			continue
		}
		if len(values) > 0 {
			return values, nil
		}
	}
}

func (p *inputPrompt) Close() error {
	return p.rl.Close()
}

func printValues(w io.Writer, values []int64) {
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

func (cmd *RunCommand) Execute(args []string) error {
	state, err := loadState(cmd.Args.ProgramFile, cmd.Set)
	if err != nil {
		return err
	}

	state, out, err := intcode.Resume(state, cmd.Inputs...)
	printValues(stdout, out)
	if err != nil {
		return describeMachineError(state, err)
	}

	var prompt *inputPrompt
	for state.Status() == intcode.WaitingForInput {
		if !cmd.Interactive {
			return fmt.Errorf("program is waiting for input at &%d, queue more with -i or run with --interactive", state.Pointer())
		}
		if prompt == nil {
			prompt, err = newInputPrompt()
			if err != nil {
				return err
			}
			defer prompt.Close()
		}
		more, err := prompt.read()
		if err != nil {
			return err
		}
		state, out, err = intcode.Resume(state, more...)
		printValues(stdout, out)
		if err != nil {
			return describeMachineError(state, err)
		}
	}
	logging.Log(logging.LogLevelInfo, "Program halted", "outputs", len(state.Outputs()))

	for _, addr := range cmd.Peek {
		v, err := state.ValueAt(addr)
		if err != nil {
			return fmt.Errorf("failed to peek &%d: %w", addr, err)
		}
		fmt.Fprintf(stdout, "&%d = %d\n", addr, v)
	}
	return nil
}

func init() {
	flagsparser.AddCommand(
		"run",
		"Run an intcode program",
		"Loads a program file, queues the given inputs and runs until the program halts, printing every output",
		&runCommand,
	)
}
