package slogx

import (
	"context"
	"log/slog"
)

type attrsCtxKey struct{}

// ContextWith stores attrs on ctx. ContextHandler appends them to every
// record logged with that context.
func ContextWith(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev, _ := ctx.Value(attrsCtxKey{}).([]slog.Attr)

	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)

	return context.WithValue(ctx, attrsCtxKey{}, merged)
}

func attrsFromContext(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	attrs, _ := ctx.Value(attrsCtxKey{}).([]slog.Attr)
	return attrs
}

type contextHandler struct {
	slog.Handler
}

// ContextHandler is meant to be passed to InitGlobal as an extra handler.
func ContextHandler(next slog.Handler) slog.Handler {
	return contextHandler{Handler: next}
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := attrsFromContext(ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}

	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{Handler: h.Handler.WithGroup(name)}
}
