package app

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// ErrorCounter is a slog.Handler that counts error-level records while
// delegating everything to the wrapped handler. The entry point uses the
// count to decide whether to pause for diagnostic review before exiting.
type ErrorCounter struct {
	inner slog.Handler
	count *atomic.Int64
}

// NewErrorCounter wraps a handler with error counting.
func NewErrorCounter(inner slog.Handler) *ErrorCounter {
	return &ErrorCounter{inner: inner, count: new(atomic.Int64)}
}

// Errors reports how many error-level records were handled.
func (h *ErrorCounter) Errors() int64 {
	return h.count.Load()
}

func (h *ErrorCounter) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ErrorCounter) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Level >= slog.LevelError {
		h.count.Add(1)
	}
	return h.inner.Handle(ctx, rec)
}

func (h *ErrorCounter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrorCounter{inner: h.inner.WithAttrs(attrs), count: h.count}
}

func (h *ErrorCounter) WithGroup(name string) slog.Handler {
	return &ErrorCounter{inner: h.inner.WithGroup(name), count: h.count}
}
