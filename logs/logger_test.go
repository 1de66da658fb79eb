package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nanolang/nano/modes"
	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("parsed", "source", "main.nano", "statements", 3)
		if !strings.Contains(buf.String(), "source=main.nano") {
			t.Fatalf("got %q", buf.String())
		}
	})
}

func TestWrapSpan(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		err := WrapSpan(ctx, errors.New("tokenize failed"))
		if !strings.Contains(err.Error(), string(span)) {
			t.Fatalf("got %v", err)
		}

		plain := errors.New("no span")
		if got := WrapSpan(context.Background(), plain); got != plain {
			t.Fatalf("got %v", got)
		}
	})
}
