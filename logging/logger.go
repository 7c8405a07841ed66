package logging

import (
	"context"
	"log/slog"
)

// Enabled lets hot paths skip building log arguments nobody will see.
func Enabled(l LogLevel) bool {
	if logger == nil {
		return false
	}
	switch l {
	case LogLevelDebug:
		return logger.Enabled(context.Background(), slog.LevelDebug)
	case LogLevelInfo:
		return logger.Enabled(context.Background(), slog.LevelInfo)
	}
	return false
}

func Log(level LogLevel, msg string, args ...any) {
	if logger == nil {
		return
	}
	switch level {
	case LogLevelDebug:
		logger.Debug(msg, args...)
	case LogLevelInfo:
		logger.Info(msg, args...)
	default:
		panic("passing something else than Debug/Info, if you want to disable logging then call binary with -lnone or --loglevel=none")
	}
}

func LogErr(err error, msg string, args ...any) {
	if err == nil || logger == nil {
		return
	}

	logger.Error(msg, append([]any{"error", err.Error()}, args...)...)
}
