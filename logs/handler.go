package logs

import (
	"context"
	"log/slog"
)

// Handler attaches the span carried by the context, if any, to every
// record before delegating, so parse diagnostics logged anywhere under
// one driver run share an attribute.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := SpanFromContext(ctx); ok {
		record.Add("logs.span", span)
	}
	return h.Handler.Handle(ctx, record)
}
