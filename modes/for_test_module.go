package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest is the scope companion for tests: development mode plus
// the test's own *testing.T.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}
