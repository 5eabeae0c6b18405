// Package logger provides structured logging for reactop. It uses Go's slog
// package with configurable levels and output formats.
package logger

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// New creates a new slog Logger with the specified level and format.
// Format "json" emits machine-readable JSON lines; anything else uses a
// colorized text handler suited for terminals. Diagnostics go to stderr so
// the rendered report on stdout stays clean.
func New(levelStr, format string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if err, ok := a.Value.Any().(error); ok {
					aErr := tint.Err(err)
					aErr.Key = a.Key
					return aErr
				}
				return a
			},
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
