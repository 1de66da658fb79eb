package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the context's span id onto err so a tokenize or parse
// failure can be matched to its log lines.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := SpanFromContext(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
