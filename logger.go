package hasharray

import (
	"log/slog"
	"os"

	"github.com/hupe1980/hasharray/keypath"
)

// Logger wraps slog.Logger with hasharray-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKeyFields adds the configured key paths to the logger.
func (l *Logger) WithKeyFields(paths []keypath.KeyPath) *Logger {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = p.String()
	}
	return &Logger{
		Logger: l.Logger.With("key_fields", names),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(kind EventKind, accepted, rejected, size int) {
	if rejected > 0 {
		l.Debug("add rejected duplicates",
			"event", kind,
			"accepted", accepted,
			"rejected", rejected,
			"size", size,
		)
		return
	}
	l.Debug("add completed",
		"event", kind,
		"accepted", accepted,
		"size", size,
	)
}

// LogRemove logs a remove, removeByKey or removeAll operation.
func (l *Logger) LogRemove(kind EventKind, removed, size int) {
	l.Debug("remove completed",
		"event", kind,
		"removed", removed,
		"size", size,
	)
}

// LogDerive logs the creation of a derived collection.
func (l *Logger) LogDerive(op string, source, result int) {
	l.Debug("derived collection built",
		"op", op,
		"source", source,
		"result", result,
	)
}

// LogRenumber logs a sequence id compaction.
func (l *Logger) LogRenumber(live, buckets int) {
	l.Info("sequence ids renumbered",
		"live", live,
		"buckets", buckets,
	)
}

// LogFull logs an insert refused because every sequence id is live.
func (l *Logger) LogFull(live int) {
	l.Warn("collection full, item rejected",
		"live", live,
	)
}
