package debugs

import (
	"testing"

	"github.com/nanolang/nano/nanolang"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	token := nanolang.Token{
		Value: "var",
		Kind:  nanolang.TokenKeyword,
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("fn"), starlark.Bytes("fn")},
		{"string", "main.nano", starlark.String("main.nano")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint", uint(42), starlark.MakeUint(42)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"named uint8", nanolang.TokenNumber, starlark.MakeUint(uint(nanolang.TokenNumber))},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]string", []string{"a.nano", "b.nano"}, starlark.NewList([]starlark.Value{starlark.String("a.nano"), starlark.String("b.nano")})},
		{"map[string]any", map[string]any{"line": 1, "column": 5}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("line"), starlark.MakeInt(1))
			d.SetKey(starlark.String("column"), starlark.MakeInt(5))
			return d
		}()},
		{"token struct", token, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Value"), starlark.String("var"))
			d.SetKey(starlark.String("Kind"), starlark.MakeUint(uint(nanolang.TokenKeyword)))
			return d
		}()},
		{"pointer to struct", &token, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Value"), starlark.String("var"))
			d.SetKey(starlark.String("Kind"), starlark.MakeUint(uint(nanolang.TokenKeyword)))
			return d
		}()},
		{"token slice", []nanolang.Token{{Value: "x", Kind: nanolang.TokenIdentifier}}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Value"), starlark.String("x"))
			d.SetKey(starlark.String("Kind"), starlark.MakeUint(uint(nanolang.TokenIdentifier)))
			return starlark.NewList([]starlark.Value{d})
		}()},
		{"nil pointer", (*nanolang.Token)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
