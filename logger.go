package elfiearriba

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/microsoft/elfie-arriba/internal/simd"
)

// Logger wraps slog.Logger with scan-engine-specific context.
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

// WithContext returns a copy of the logger. It reads no values from ctx
// and adds no attributes.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	return &Logger{
		Logger: l.Logger.With(),
	}
}

// LogScan logs a predicate-kernel scan.
func (l *Logger) LogScan(ctx context.Context, cOp, bOp int, rows int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"cOp", cOp,
			"bOp", bOp,
			"rows", rows,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "scan completed",
		"cOp", cOp,
		"bOp", bOp,
		"rows", rows,
		"elapsed", elapsed,
	)
}

// LogBucketize logs a bucketizer call.
func (l *Logger) LogBucketize(ctx context.Context, bucketCount, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bucketize failed",
			"buckets", bucketCount,
			"rows", rows,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "bucketize completed",
		"buckets", bucketCount,
		"rows", rows,
	)
}

// LogCapability logs which ISA was selected at startup. Call once, after
// internal/simd's init() functions have run.
func (l *Logger) LogCapability(ctx context.Context) {
	l.InfoContext(ctx, "simd capability selected",
		"isa", simd.ActiveISA().String(),
		"overridden", simd.IsOverridden(),
	)
}
