package nanolang

import (
	"fmt"
	"io"
	"strings"
)

// DumpTokens writes the diagnostic token listing, one "<value> : <kind>"
// line per token.
func DumpTokens(w io.Writer, tokens []Token) {
	for _, token := range tokens {
		fmt.Fprintf(w, "%s : %s\n", token.Value, token.Kind)
	}
}

// Dump writes the indented tree rendering of a statement sequence, each
// top-level node at depth zero.
func Dump(w io.Writer, nodes []Node) {
	for _, node := range nodes {
		node.Dump(w, 0)
	}
}

func (n *Var) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sVar %s\n", indentStr(indent), n.Name)
	n.Value.Dump(w, indent+1)
}

func (n *Number) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sNumber %s\n", indentStr(indent), formatNumber(n.Value))
}

func (n *Str) Dump(w io.Writer, indent int) {
	// raw value, the tokenizer did no escape processing
	fmt.Fprintf(w, "%sString \"%s\"\n", indentStr(indent), n.Value)
}

func (n *Identifier) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sIdentifier %s\n", indentStr(indent), n.Name)
}

func (n *Binary) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sBinary '%s'\n", indentStr(indent), n.Op)
	n.Left.Dump(w, indent+1)
	n.Right.Dump(w, indent+1)
}

func (n *Call) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sCall %s\n", indentStr(indent), n.Callee)
	for _, arg := range n.Args {
		arg.Dump(w, indent+1)
	}
}

func (n *Function) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sFunction %s\n", indentStr(indent), n.Name)
	fmt.Fprintf(w, "%sParameters: %s\n", indentStr(indent+1), strings.Join(n.Params, ", "))
	fmt.Fprintf(w, "%sBody:\n", indentStr(indent+1))
	for _, stmt := range n.Body {
		stmt.Dump(w, indent+2)
	}
}

func (n *Return) Dump(w io.Writer, indent int) {
	fmt.Fprintf(w, "%sReturn\n", indentStr(indent))
	if n.Value != nil {
		n.Value.Dump(w, indent+1)
	}
}
