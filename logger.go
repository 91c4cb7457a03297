package molfp

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with molfp-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogCompute logs a fingerprint computation.
func (l *Logger) LogCompute(ctx context.Context, t Type, length int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fingerprint computation failed",
			"fp_type", string(t),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fingerprint computed",
			"fp_type", string(t),
			"length", length,
		)
	}
}

// LogBatch logs a batch featurization.
func (l *Logger) LogBatch(ctx context.Context, t Type, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch featurization completed with failures",
			"fp_type", string(t),
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch featurization completed",
			"fp_type", string(t),
			"count", count,
		)
	}
}
