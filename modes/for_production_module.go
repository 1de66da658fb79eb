package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is what binaries put in their scope. It provides
// the production mode, which the logger reads to decide on source
// positions, and a nil *testing.T so providers can depend on either
// without caring how the scope was built.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) T() *testing.T {
	return nil
}
