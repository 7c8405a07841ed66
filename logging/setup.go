package logging

import (
	"io"
	"log/slog"
	"os"
)

type LogLevel string

const (
	LogLevelNone  LogLevel = "none"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
)

var (
	logger *slog.Logger
	level  = new(slog.LevelVar)
)

func Setup(optslevel LogLevel) {
	SetupWriter(optslevel, os.Stderr)
}

// SetupWriter sends log records to sink. LogLevelNone turns logging off.

func SetupWriter(optslevel LogLevel, sink io.Writer) {
	switch optslevel {
	case LogLevelNone:
		logger = nil
		return
	case LogLevelInfo:
		level.Set(slog.LevelInfo)
	default:
		level.Set(slog.LevelDebug)
	}
	handler := slog.NewTextHandler(sink, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
}

// Valid reports whether l is one of the known levels.
func (l LogLevel) Valid() bool {
	return l == LogLevelNone || l == LogLevelInfo || l == LogLevelDebug
}
