package memtag

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with memtag-specific helpers.
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
// This is the default; tagging primitives sit on hot paths.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op Op) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op.String()),
	}
}

// LogModeChange logs a tag control change.
func (l *Logger) LogModeChange(from, to Mode, included TagMask) {
	l.Debug("tag control changed",
		"from", from.String(),
		"to", to.String(),
		"included", included.String(),
	)
}

// LogMigration logs a completed migration.
func (l *Logger) LogMigration(op Op, bytes int) {
	l.Debug("migration completed",
		"op", op.String(),
		"bytes", bytes,
	)
}

// LogAbort logs a fatal condition right before the caller panics with err.
func (l *Logger) LogAbort(err error) {
	l.Error("aborting", "error", err)
}
