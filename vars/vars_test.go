package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("%q should be true", str)
		}
	}
	for _, str := range []string{"false", "F", "no", "N", "", "maybe"} {
		if StrToBool(str) {
			t.Fatalf("%q should be false", str)
		}
	}
}

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 0, 64); got != 64 {
		t.Fatalf("got %d", got)
	}
	if got := FirstNonZero("", "nano.cue"); got != "nano.cue" {
		t.Fatalf("got %s", got)
	}
	if got := FirstNonZero[int](); got != 0 {
		t.Fatalf("got %d", got)
	}
}
