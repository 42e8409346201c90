// Package logging wires request-scoped slog attributes through the context
// so that every log line emitted while handling a request carries the same
// trace id and request metadata.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKey string

const slogAttrs contextKey = "slogAttrs"

// ContextHandler decorates an slog.Handler with attributes carried in the
// context via WithAttrs.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps h so that attributes stored in the context with
// WithAttrs are added to every record.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

// Enabled delegates to the underlying handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle adds the context-carried attributes to the record before passing it
// to the underlying handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogAttrs).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	if err := h.handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

// WithAttrs returns a new ContextHandler wrapping the underlying handler's
// WithAttrs result.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ContextHandler wrapping the underlying handler's
// WithGroup result.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs stores attrs in the context for ContextHandler to pick up.
// Attributes accumulate over nested calls.
func WithAttrs(ctx context.Context, attr ...slog.Attr) context.Context {
	if v, ok := ctx.Value(slogAttrs).([]slog.Attr); ok {
		attr = append(v[:len(v):len(v)], attr...)
	}
	return context.WithValue(ctx, slogAttrs, attr)
}
