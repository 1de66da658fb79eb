package nanolang

import (
	"io"
	"strconv"
	"strings"
)

// NodeKind discriminates the closed variant set. Adding a kind here forces
// every switch over NodeKind to be revisited.
type NodeKind uint8

const (
	NodeVar NodeKind = iota
	NodeNumber
	NodeStr
	NodeIdentifier
	NodeBinary
	NodeCall
	NodeFunction
	NodeReturn
)

// Node is a parse result. Nodes are built bottom-up during parsing, own
// their children exclusively, and are read-only once Parse returns. The only
// behavior they carry is the indented diagnostic dump.
type Node interface {
	Kind() NodeKind
	Dump(w io.Writer, indent int)
}

type Var struct {
	Name  string
	Value Node
}

type Number struct {
	Value float64
}

type Str struct {
	Value string
}

type Identifier struct {
	Name string
}

type Binary struct {
	Op    string
	Left  Node
	Right Node
}

type Call struct {
	Callee string
	Args   []Node
}

type Function struct {
	Name   string
	Params []string
	Body   []Node
}

type Return struct {
	Value Node
}

func (*Var) Kind() NodeKind        { return NodeVar }
func (*Number) Kind() NodeKind     { return NodeNumber }
func (*Str) Kind() NodeKind        { return NodeStr }
func (*Identifier) Kind() NodeKind { return NodeIdentifier }
func (*Binary) Kind() NodeKind     { return NodeBinary }
func (*Call) Kind() NodeKind       { return NodeCall }
func (*Function) Kind() NodeKind   { return NodeFunction }
func (*Return) Kind() NodeKind     { return NodeReturn }

func indentStr(indent int) string {
	return strings.Repeat("  ", indent)
}

// formatNumber renders integer-valued floats without a decimal point.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
