package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		injected *testing.T,
		mode Mode,
	) {
		if injected != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatal()
		}
	})
}
