package main

import (
	"fmt"
	"strings"

	"hadydotai/intcode/intcode"
	"hadydotai/intcode/logging"

	"github.com/BurntSushi/toml"
)

// Config is the optional settings file. Anything given explicitly on the
// command line wins over it.
//
//	loglevel = "debug"
//	memory = 4096
//
//	[debugger]
//	history_file = "/tmp/.intcode_debugger_history"
//	history_limit = 1000
//	max_states = 100000
type Config struct {
	LogLevel logging.LogLevel `toml:"loglevel"`
	Memory   int              `toml:"memory"`
	Debugger DebuggerConfig   `toml:"debugger"`
}

type DebuggerConfig struct {
	HistoryFile  string `toml:"history_file"`
	HistoryLimit int    `toml:"history_limit"`
	// MaxStates bounds how many snapshots `back` can walk through.
	MaxStates int `toml:"max_states"`
}

func defaultConfig() Config {
	return Config{
		Memory: intcode.DefaultCapacity,
		Debugger: DebuggerConfig{
			HistoryFile:  "/tmp/.intcode_debugger_history",
			HistoryLimit: 1000,
			MaxStates:    100000,
		},
	}
}

func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("config file %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if c.LogLevel != "" && !c.LogLevel.Valid() {
		return c, fmt.Errorf("config file %s: unknown loglevel %q", path, c.LogLevel)
	}
	if c.Memory <= 0 {
		return c, fmt.Errorf("config file %s: memory must be positive, got %d", path, c.Memory)
	}
	if c.Debugger.MaxStates <= 0 {
		return c, fmt.Errorf("config file %s: debugger.max_states must be positive", path)
	}
	return c, nil
}

// apply copies file settings into o for every option explicit does not
// claim.
func (c Config) apply(o *Options, explicit func(longName string) bool) {
	if c.LogLevel != "" && !explicit("loglevel") {
		o.LogLevel = c.LogLevel
	}
	if !explicit("memory") {
		o.Memory = c.Memory
	}
}
