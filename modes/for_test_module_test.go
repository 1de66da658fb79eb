package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		injected *testing.T,
		mode Mode,
	) {
		if injected != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatal()
		}
	})
}
