package nanolang

import (
	"strings"
	"testing"
)

func TestLexErrorRendering(t *testing.T) {
	_, err := Tokenize(NewSource("prog.nano", "var ^"))
	if err == nil {
		t.Fatal("expected error")
	}
	rendered := err.Error()

	if !strings.HasPrefix(rendered, "unknown character '^' at prog.nano:1:5") {
		t.Errorf("got %q", rendered)
	}

	lines := strings.Split(rendered, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected source line and caret, got %q", rendered)
	}
	if lines[1] != "var ^" {
		t.Errorf("expected the offending line, got %q", lines[1])
	}
	if lines[2] != "    ^" {
		t.Errorf("expected the caret under column 5, got %q", lines[2])
	}
}

func TestLexErrorWithoutSource(t *testing.T) {
	err := &LexError{
		Msg: "unterminated string literal",
		Pos: Pos{Line: 2, Column: 7},
	}
	if err.Error() != "unterminated string literal at line 2, column 7" {
		t.Errorf("got %q", err.Error())
	}
}

func TestParseErrorRendering(t *testing.T) {
	err := &ParseError{
		Msg: `expected identifier but found operator "="`,
		Pos: Pos{Line: 1, Column: 4},
	}
	expected := `expected identifier but found operator "=" at line 1, column 4`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestCaretUnderTab(t *testing.T) {
	_, err := Tokenize(NewSource("prog.nano", "\tvar ^"))
	if err == nil {
		t.Fatal("expected error")
	}
	lines := strings.Split(err.Error(), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %q", err.Error())
	}
	// tabs are carried through so the caret still lines up
	if lines[2] != "\t    ^" {
		t.Errorf("got %q", lines[2])
	}
}
