package ndslice

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ndslice-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelWarn).
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind adds the partition kind to the logger.
func (l *Logger) WithKind(k Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", k.String()),
	}
}

// WithDimension adds a dimension name field to the logger.
func (l *Logger) WithDimension(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", name),
	}
}

// LogSetup logs a completed or failed setup.
func (l *Logger) LogSetup(rows, bins int, err error) {
	if err != nil {
		l.Error("setup failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.Debug("setup completed",
			"rows", rows,
			"bins", bins,
		)
	}
}

// LogDiagnostic logs a non-fatal setup diagnostic at warn level.
func (l *Logger) LogDiagnostic(d Diagnostic) {
	l.Warn(d.Message,
		"code", d.Code.String(),
		"dimension", d.Dimension,
	)
}
