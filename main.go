package main

import (
	"fmt"
	"os"

	"hadydotai/intcode/logging"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	LogLevel logging.LogLevel `short:"l" long:"loglevel" description:"Set the level of logging" choice:"none" choice:"info" choice:"debug" default:"info"`
	Config   string           `short:"c" long:"config" description:"Read settings from a TOML file"`
	Memory   int              `short:"m" long:"memory" description:"Memory capacity of the machine, in cells" default:"2048"`
}

var (
	opts        Options
	cfg         = defaultConfig()
	flagsparser = flags.NewParser(&opts, flags.Default)
)

// explicitlySet reports whether the user passed the option on the command
// line rather than getting its default.
func explicitlySet(longName string) bool {
	opt := flagsparser.FindOptionByLongName(longName)
	return opt != nil && opt.IsSet() && !opt.IsSetDefault()
}

func setup() error {
	if opts.Config != "" {
		loaded, err := loadConfig(opts.Config)
		if err != nil {
			return err
		}
		cfg = loaded
		cfg.apply(&opts, explicitlySet)
	}
	logging.Setup(opts.LogLevel)
	if opts.Memory <= 0 {
		return fmt.Errorf("memory capacity must be positive, got %d", opts.Memory)
	}
	logging.Log(logging.LogLevelDebug, "Settings resolved", "memory", opts.Memory, "config", opts.Config)
	return nil
}

func main() {
	flagsparser.CommandHandler = func(command flags.Commander, args []string) error {
		if err := setup(); err != nil {
			return err
		}
		return command.Execute(args)
	}

	if _, err := flagsparser.Parse(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode logs a failed invocation and picks the process exit status.
// Asking for help is not a failure.
func exitCode(err error) int {
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		return 0
	}
	logging.LogErr(err, "command failed")
	return 1
}
