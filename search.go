package main

import (
	"fmt"

	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"
)

type SearchCommand struct {
	Target     int64 `short:"t" long:"target" description:"Value the result cell must hold" required:"yes"`
	Max        int64 `long:"max" description:"Largest noun and verb to try" default:"99"`
	NounAddr   int64 `long:"noun-addr" description:"Address the noun is written to" default:"1"`
	VerbAddr   int64 `long:"verb-addr" description:"Address the verb is written to" default:"2"`
	ResultAddr int64 `long:"result-addr" description:"Address read once a run halts" default:"0"`
	Args       struct {
		ProgramFile string `positional-arg-name:"PROGRAM-FILE" required:"yes"`
	} `positional-args:"yes"`
}

var searchCommand SearchCommand

type searchParams struct {
	target     int64
	max        int64
	nounAddr   int64
	verbAddr   int64
	resultAddr int64
}

type searchResult struct {
	noun, verb int64
	found      bool
	runs       int
	failed     int
}

func (r searchResult) answer() int64 {
	return 100*r.noun + r.verb
}

// searchNounVerb runs one branch of base per (noun, verb) pair in
// [0, max]², in order, until the result cell of a halted branch equals the
// target. Branches that fail or wait for input count as misses.
func searchNounVerb(base intcode.State, p searchParams) (searchResult, error) {
	var res searchResult
	for noun := int64(0); noun <= p.max; noun++ {
		for verb := int64(0); verb <= p.max; verb++ {
			branch, err := base.WithValueAt(p.nounAddr, noun)
			if err != nil {
				return res, fmt.Errorf("noun address: %w", err)
			}
			branch, err = branch.WithValueAt(p.verbAddr, verb)
			if err != nil {
				return res, fmt.Errorf("verb address: %w", err)
			}

			res.runs++
			branch, err = intcode.Run(branch)
			if err != nil {
				res.failed++
				logging.Log(logging.LogLevelDebug, "Branch failed", "noun", noun, "verb", verb, "error", err)
				continue
			}
			if branch.Status() != intcode.Halted {
				res.failed++
				logging.Log(logging.LogLevelDebug, "Branch wants input", "noun", noun, "verb", verb)
				continue
			}

			result, err := branch.ValueAt(p.resultAddr)
			if err != nil {
				return res, fmt.Errorf("result address: %w", err)
			}
			if result == p.target {
				res.noun, res.verb, res.found = noun, verb, true
				return res, nil
			}
		}
	}
	return res, nil
}

func (cmd *SearchCommand) Execute(args []string) error {
	if cmd.Max < 0 {
		return fmt.Errorf("--max must not be negative, got %d", cmd.Max)
	}
	base, err := loadState(cmd.Args.ProgramFile, nil)
	if err != nil {
		return err
	}

	res, err := searchNounVerb(base, searchParams{
		target:     cmd.Target,
		max:        cmd.Max,
		nounAddr:   cmd.NounAddr,
		verbAddr:   cmd.VerbAddr,
		resultAddr: cmd.ResultAddr,
	})
	if err != nil {
		return err
	}
	logging.Log(logging.LogLevelInfo, "Search finished", "runs", res.runs, "failed", res.failed, "found", res.found)
	if !res.found {
		return fmt.Errorf("no noun/verb in [0, %d] produces %d", cmd.Max, cmd.Target)
	}

	fmt.Fprintf(stdout, "noun=%d verb=%d answer=%d\n", res.noun, res.verb, res.answer())
	return nil
}

func init() {
	flagsparser.AddCommand(
		"search",
		"Find the noun and verb that make a program produce a value",
		"Branches the loaded program once per noun/verb pair, writing them at --noun-addr and --verb-addr, and reports the first pair whose run leaves --target at --result-addr",
		&searchCommand,
	)
}
