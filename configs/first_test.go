package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	depth := First[int](loader, "parser.maxDepth")
	if depth != 64 {
		t.Fatalf("got %v", depth)
	}

	missing := First[string](loader, "output")
	if missing != "" {
		t.Fatalf("got %v", missing)
	}

}
