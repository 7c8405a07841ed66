package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"
)

type DebugCommand struct {
	Inputs []int64         `short:"i" long:"input" description:"Queue an input value before the first instruction, repeat for more"`
	Set    map[int64]int64 `short:"s" long:"set" description:"Patch memory before starting, as ADDR=VALUE, repeat for more" key-value-delimiter:"="`
	Args   struct {
		ProgramFile string `positional-arg-name:"PROGRAM-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var debugCommand DebugCommand

// REPL is a step debugger. Every executed instruction yields a new state,
// so stepping back is just dropping the newest snapshot.
type REPL struct {
	initial     intcode.State
	history     []intcode.State
	maxStates   int
	breakpoints map[int64]bool
	out         io.Writer
}

func NewREPL(initial intcode.State, out io.Writer, maxStates int) *REPL {
	return &REPL{
		initial:     initial,
		history:     []intcode.State{initial},
		maxStates:   maxStates,
		breakpoints: make(map[int64]bool),
		out:         out,
	}
}

// completer implements readline.AutoCompleter
type completer struct{}

var replCommands = []string{
	"step", "s", "n",
	"back", "b",
	"continue", "c",
	"break",
	"input", "i",
	"mem", "m",
	"dis", "d",
	"state",
	"out", "o",
	"restart", "r",
	"quit", "q",
	"help", "h",
}

func (c completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	input := string(line[:pos])
	for _, cmd := range replCommands {
		if strings.HasPrefix(cmd, input) {
			newLine = append(newLine, []rune(cmd[len(input):]))
		}
	}
	return newLine, len(input)
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
  step, s, n [N]       Execute the next N instructions (default 1)
  back, b [N]          Step back N instructions (default 1)
  continue, c          Run until the program stops or hits a breakpoint
  break <addr>         Toggle a breakpoint at an address
  input, i <v>...      Queue input values
  mem, m <addr> [N]    Show N memory cells starting at addr (default 1)
  dis, d [addr] [N]    Disassemble N instructions (default: 8 from the pointer)
  state                Dump the current machine state
  out, o               Show every output so far
  restart, r           Go back to the initial state
  help, h              Show this help message
  quit, q              Exit debugger

Tips:
  - Use Tab for command completion
  - Use Up/Down arrows for command history
`
	fmt.Fprintln(r.out, help)
}

func (r *REPL) current() intcode.State {
	return r.history[len(r.history)-1]
}

func (r *REPL) push(s intcode.State) {
	r.history = append(r.history, s)
	if len(r.history) > r.maxStates {
		r.history = r.history[len(r.history)-r.maxStates:]
	}
}

// step executes one instruction. It reports false once nothing more can
// run, either because the machine stopped or the instruction failed.
func (r *REPL) step() bool {
	cur := r.current()
	if cur.Status().Stopped() {
		fmt.Fprintf(r.out, "\033[31mProgram is %s\033[0m\n", cur.Status())
		return false
	}
	next, err := intcode.Step(cur)
	if err != nil {
		fmt.Fprintf(r.out, "\033[31m%v\033[0m\n", describeMachineError(cur, err))
		return false
	}
	r.push(next)
	if out := next.Outputs(); len(out) > len(cur.Outputs()) {
		fmt.Fprintf(r.out, "\033[1;32moutput:\033[0m %d\n", out[len(out)-1])
	}
	return true
}

func (r *REPL) continueRun() {
	for r.step() {
		cur := r.current()
		if cur.Status().Stopped() {
			break
		}
		if r.breakpoints[cur.Pointer()] {
			fmt.Fprintf(r.out, "Breakpoint at &%d\n", cur.Pointer())
			break
		}
	}
}

func (r *REPL) printState() {
	s := r.current()
	fmt.Fprintf(r.out, "\033[1;35mIP: %d\033[0m, \033[1;34mRB: %d\033[0m, \033[1;33m%s\033[0m",
		s.Pointer(), s.RelativeBase(), s.Status())
	if d, err := s.Disassemble(s.Pointer()); err == nil {
		fmt.Fprintf(r.out, " | %s", d.Text)
	}
	fmt.Fprintln(r.out)
}

type stateDump struct {
	Status        string
	Pointer       int64
	RelativeBase  int64
	Capacity      int
	PendingInputs []int64
	Outputs       []int64
	Steps         int
}

func (r *REPL) dumpState() {
	s := r.current()
	fmt.Fprintln(r.out, repr.String(stateDump{
		Status:        s.Status().String(),
		Pointer:       s.Pointer(),
		RelativeBase:  s.RelativeBase(),
		Capacity:      s.Capacity(),
		PendingInputs: s.PendingInputs(),
		Outputs:       s.Outputs(),
		Steps:         len(r.history) - 1,
	}, repr.Indent("  ")))
}

func (r *REPL) showMemory(addr int64, count int) {
	s := r.current()
	for i := 0; i < count; i++ {
		v, err := s.ValueAt(addr + int64(i))
		if err != nil {
			fmt.Fprintf(r.out, "\033[31m%v\033[0m\n", err)
			return
		}
		fmt.Fprintf(r.out, "%04d: %d\n", addr+int64(i), v)
	}
}

func (r *REPL) disassemble(addr int64, count int) {
	s := r.current()
	lines, err := s.DisassembleRange(addr, count)
	for _, l := range lines {
		marker := "  "
		if l.Addr == s.Pointer() {
			marker = "\033[1;33m→\033[0m "
		} else if r.breakpoints[l.Addr] {
			marker = "\033[31m●\033[0m "
		}
		fmt.Fprintf(r.out, "%s%04d: %s\n", marker, l.Addr, l.Text)
	}
	if err != nil {
		fmt.Fprintf(r.out, "\033[31m%v\033[0m\n", err)
	}
}

// intArg parses args[i] or returns def when it is absent.
func intArg(args []string, i int, def int64) (int64, error) {
	if i >= len(args) {
		return def, nil
	}
	v, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", args[i])
	}
	return v, nil
}

// exec runs one command line and reports whether the debugger should exit.
func (r *REPL) exec(line string) (quit bool) {
	args := strings.Fields(strings.TrimSpace(line))
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "help", "h":
		r.printHelp()

	case "step", "s", "n":
		n, err := intArg(args, 1, 1)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		for i := int64(0); i < n && r.step(); i++ {
		}
		r.printState()

	case "back", "b":
		n, err := intArg(args, 1, 1)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		for i := int64(0); i < n && len(r.history) > 1; i++ {
			r.history = r.history[:len(r.history)-1]
		}
		r.printState()

	case "continue", "c":
		r.continueRun()
		r.printState()

	case "break":
		if len(args) < 2 {
			fmt.Fprintln(r.out, "Usage: break <addr>")
			return false
		}
		addr, err := intArg(args, 1, 0)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		if r.breakpoints[addr] {
			delete(r.breakpoints, addr)
			fmt.Fprintf(r.out, "Breakpoint cleared at &%d\n", addr)
		} else {
			r.breakpoints[addr] = true
			fmt.Fprintf(r.out, "Breakpoint set at &%d\n", addr)
		}

	case "input", "i":
		values, err := parseInputLine(strings.Join(args[1:], " "))
		if err != nil || len(values) == 0 {
			fmt.Fprintln(r.out, "Usage: input <value>...")
			return false
		}
		cur := r.current()
		if cur.Status() == intcode.Halted {
			fmt.Fprintln(r.out, "\033[31mProgram has halted\033[0m")
			return false
		}
		r.push(cur.WithInputs(values...))
		fmt.Fprintf(r.out, "Queued %d input(s)\n", len(values))

	case "mem", "m":
		if len(args) < 2 {
			fmt.Fprintln(r.out, "Usage: mem <addr> [count]")
			return false
		}
		addr, err := intArg(args, 1, 0)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		count, err := intArg(args, 2, 1)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		r.showMemory(addr, int(count))

	case "dis", "d":
		addr, err := intArg(args, 1, r.current().Pointer())
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		count, err := intArg(args, 2, 8)
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false
		}
		r.disassemble(addr, int(count))

	case "state":
		r.dumpState()

	case "out", "o":
		fmt.Fprintln(r.out, "Outputs:", r.current().Outputs())

	case "restart", "r":
		r.history = []intcode.State{r.initial}
		fmt.Fprintln(r.out, "Program restarted")
		r.printState()

	case "quit", "q":
		fmt.Fprintln(r.out, "\033[32mGoodbye!\033[0m")
		return true

	default:
		fmt.Fprintf(r.out, "\033[31mUnknown command: %s\033[0m\n", args[0])
	}
	return false
}

func (r *REPL) Start() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m⟩\033[0m ",
		HistoryFile:     cfg.Debugger.HistoryFile,
		HistoryLimit:    cfg.Debugger.HistoryLimit,
		AutoComplete:    completer{},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start debugger prompt: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(r.out, "\033[1;36mIntcode Debugger\033[0m")
	fmt.Fprintln(r.out, "Type 'help' or 'h' for available commands")
	fmt.Fprintln(r.out)
	r.printState()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			return nil
		}
		if r.exec(line) {
			return nil
		}
	}
}

func (cmd *DebugCommand) Execute(args []string) error {
	state, err := loadState(cmd.Args.ProgramFile, cmd.Set)
	if err != nil {
		return err
	}
	state = state.WithInputs(cmd.Inputs...)
	logging.Log(logging.LogLevelDebug, "Starting debugger", "inputs", len(cmd.Inputs))

	return NewREPL(state, os.Stdout, cfg.Debugger.MaxStates).Start()
}

func init() {
	flagsparser.AddCommand(
		"debug",
		"Step through an intcode program",
		"Loads a program into an interactive step debugger that can step forward and back, set breakpoints, feed input and inspect memory",
		&debugCommand,
	)
}
