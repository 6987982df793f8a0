package simtrack

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with simtrack-specific context.
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

// WithFrame adds a frame field to the logger.
func (l *Logger) WithFrame(frame int) *Logger {
	return &Logger{
		Logger: l.Logger.With("frame", frame),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogEmbed logs a batch embedding operation.
func (l *Logger) LogEmbed(ctx context.Context, count, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "embed failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "embed completed",
			"count", count,
			"dimension", dimension,
		)
	}
}

// LogAssociate logs a cross-frame association operation.
func (l *Logger) LogAssociate(ctx context.Context, detections, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "associate failed",
			"detections", detections,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "associate completed",
			"detections", detections,
			"matched", matched,
		)
	}
}
