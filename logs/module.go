package logs

import (
	"context"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Span tags every record logged under a context produced by NewSpan.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType

// SpanFromContext reports the span the context carries, if any.
func SpanFromContext(ctx context.Context) (Span, bool) {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span), true
	}
	return "", false
}
