package seqgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seqgo-specific context.
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

// WithQuery adds the query identifier to the logger.
func (l *Logger) WithQuery(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", id),
	}
}

// LogRank logs a ranking operation. The best-match line is the checker's
// console surface: it names the top-ranked reference.
func (l *Logger) LogRank(ctx context.Context, refs int, best string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ranking failed",
			"references", refs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "best match",
			"references", refs,
			"name", best,
		)
	}
}

// LogExport logs a score-table export.
func (l *Logger) LogExport(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "export failed",
			"artifact", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "export completed",
			"artifact", name,
		)
	}
}

// LogPrescreen logs a prescreen pass.
func (l *Logger) LogPrescreen(ctx context.Context, k, candidates int) {
	l.DebugContext(ctx, "prescreen completed",
		"k", k,
		"candidates", candidates,
	)
}
