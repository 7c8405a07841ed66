package main

import (
	"testing"

	"hadydotai/intcode/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "intcode.toml", `
loglevel = "debug"
memory = 4096

[debugger]
history_limit = 50
max_states = 10
`)
	c, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelDebug, c.LogLevel)
	assert.Equal(t, 4096, c.Memory)
	assert.Equal(t, 50, c.Debugger.HistoryLimit)
	assert.Equal(t, 10, c.Debugger.MaxStates)
	assert.Equal(t, defaultConfig().Debugger.HistoryFile, c.Debugger.HistoryFile)
}

func TestLoadConfigErrors(t *testing.T) {
	tcs := map[string]string{
		"unknown key":  "colour = true\n",
		"bad level":    "loglevel = \"loud\"\n",
		"zero memory":  "memory = 0\n",
		"bad states":   "[debugger]\nmax_states = -1\n",
		"invalid toml": "memory = \n",
		"wrong type":   "memory = \"big\"\n",
	}
	for name, content := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, "intcode.toml", content))
			assert.Error(t, err)
		})
	}

	_, err := loadConfig("/nonexistent/intcode.toml")
	assert.Error(t, err)
}

func TestConfigApply(t *testing.T) {
	c := Config{LogLevel: logging.LogLevelDebug, Memory: 4096}

	o := Options{LogLevel: logging.LogLevelInfo, Memory: 2048}
	c.apply(&o, func(string) bool { return false })
	assert.Equal(t, logging.LogLevelDebug, o.LogLevel)
	assert.Equal(t, 4096, o.Memory)

	o = Options{LogLevel: logging.LogLevelNone, Memory: 128}
	c.apply(&o, func(name string) bool { return true })
	assert.Equal(t, logging.LogLevelNone, o.LogLevel)
	assert.Equal(t, 128, o.Memory)

	// A file without a loglevel leaves the option alone.
	o = Options{LogLevel: logging.LogLevelInfo, Memory: 2048}
	Config{Memory: 512}.apply(&o, func(string) bool { return false })
	assert.Equal(t, logging.LogLevelInfo, o.LogLevel)
	assert.Equal(t, 512, o.Memory)
}
