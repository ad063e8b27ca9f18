package logger

import (
	"context"
	"errors"
	"log/slog"
)

// teeHandler sends each record to every handler that accepts its level.
type teeHandler struct {
	handlers []slog.Handler
}

var _ slog.Handler = (*teeHandler)(nil)

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error

	for _, h := range t.handlers {
		if h.Enabled(ctx, record.Level) {
			errs = append(errs, h.Handle(ctx, record.Clone()))
		}
	}

	return errors.Join(errs...)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{handlers: t.mapHandlers(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{handlers: t.mapHandlers(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })}
}

func (t *teeHandler) mapHandlers(f func(slog.Handler) slog.Handler) []slog.Handler {
	out := make([]slog.Handler, len(t.handlers))
	for i, h := range t.handlers {
		out[i] = f(h)
	}

	return out
}
