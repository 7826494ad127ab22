package singine

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with singine-specific context.
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

// WithRunID adds the pipeline-run correlation id to the logger.
func (l *Logger) WithRunID(runID string) *Logger {
	if runID == "" {
		return l
	}
	return &Logger{
		Logger: l.Logger.With("run_id", runID),
	}
}

// WithNamespace adds a namespace field to the logger.
func (l *Logger) WithNamespace(namespace string) *Logger {
	return &Logger{
		Logger: l.Logger.With("namespace", namespace),
	}
}

// LogMint logs an identifier mint.
func (l *Logger) LogMint(ctx context.Context, namespace, localID string, inode uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "mint failed",
			"namespace", namespace,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "generated id",
			"namespace", namespace,
			"gen_id", localID,
			"inode", inode,
		)
	}
}

// LogSearch logs the outcome of a shortest-path query.
func (l *Logger) LogSearch(ctx context.Context, src, dst string, found bool, hops int, totalWeight float64, duration time.Duration) {
	if !found {
		l.WarnContext(ctx, "no path found",
			"src", src,
			"dst", dst,
			"duration", duration,
		)
		return
	}
	l.InfoContext(ctx, "shortest path found",
		"src", src,
		"dst", dst,
		"hops", hops,
		"total_weight", totalWeight,
		"duration", duration,
	)
}
