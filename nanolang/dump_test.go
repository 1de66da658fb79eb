package nanolang

import (
	"strings"
	"testing"
)

func TestDumpTokens(t *testing.T) {
	tokens, err := Tokenize(NewSource("test", "var x = 1 + 2"))
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	DumpTokens(&sb, tokens)
	expected := `var : keyword
x : identifier
= : operator
1 : number
+ : operator
2 : number
`
	if sb.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, sb.String())
	}
}

func TestDump(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input: "var x = 3",
			expected: `Var x
  Number 3
`,
		},
		{
			input: "var x = 1 + 2",
			expected: `Var x
  Binary '+'
    Number 1
    Number 2
`,
		},
		{
			input: `print("hello", 42)`,
			expected: `Call print
  String "hello"
  Number 42
`,
		},
		{
			input: "fn add(a, b) { return a + b }",
			expected: `Function add
  Parameters: a, b
  Body:
    Return
      Binary '+'
        Identifier a
        Identifier b
`,
		},
		{
			input: "fn noop() {\n}",
			expected: `Function noop
  Parameters:
  Body:
`,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			nodes := parseSource(t, test.input)
			var sb strings.Builder
			Dump(&sb, nodes)
			if sb.String() != test.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", test.expected, sb.String())
			}
		})
	}
}

func TestDumpReturnWithoutValue(t *testing.T) {
	node := &Return{}
	var sb strings.Builder
	node.Dump(&sb, 1)
	if sb.String() != "  Return\n" {
		t.Errorf("got %q", sb.String())
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		1:       "1",
		42:      "42",
		1000000: "1000000",
	}
	for value, expected := range tests {
		if got := formatNumber(value); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}
}
