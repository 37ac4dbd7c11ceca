package triego

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with triego-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBuild logs a trie build.
func (l *Logger) LogBuild(keys, levels int, err error) {
	if err != nil {
		l.Error("trie build failed",
			"keys", keys,
			"error", err,
		)
	} else {
		l.Info("trie built",
			"keys", keys,
			"levels", levels,
		)
	}
}

// LogBatchLookup logs a batch lookup.
func (l *Logger) LogBatchLookup(keys, found int, err error) {
	if err != nil {
		l.Error("batch lookup failed",
			"keys", keys,
			"error", err,
		)
	} else {
		l.Debug("batch lookup completed",
			"keys", keys,
			"found", found,
		)
	}
}
