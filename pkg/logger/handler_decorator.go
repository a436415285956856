package logger

import (
	"context"
	"log/slog"
)

// ContextValue names a context key whose value is copied into log records,
// for example the id of the delivery run a record belongs to.
type ContextValue struct {
	Name string
	Key  any
}

// ContextHandler is a slog.Handler that tags each record with the configured
// context values before passing it on.
type ContextHandler struct {
	next   slog.Handler
	values []ContextValue
}

// NewContextHandler wraps next. Values with an empty name or a nil key are ignored.
func NewContextHandler(next slog.Handler, values ...ContextValue) *ContextHandler {
	kept := make([]ContextValue, 0, len(values))
	for _, v := range values {
		if v.Name != "" && v.Key != nil {
			kept = append(kept, v)
		}
	}
	return &ContextHandler{next: next, values: kept}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds every value present in ctx. Keys missing from ctx are skipped.
func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, v := range h.values {
		if val := ctx.Value(v.Key); val != nil {
			rec.AddAttrs(slog.Any(v.Name, val))
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs), values: h.values}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name), values: h.values}
}
