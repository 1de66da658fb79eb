package nanolang

import (
	"fmt"
	"strings"
)

type Pos struct {
	Line   int
	Column int
}

// LexError reports the first unrecognized character or an unterminated
// string literal. Tokenization stops at the point of detection.
type LexError struct {
	Msg    string
	Char   rune
	Pos    Pos
	Source *Source
}

func (e *LexError) Error() string {
	var sb strings.Builder
	if e.Source != nil && e.Source.Name != "" {
		fmt.Fprintf(&sb, "%s at %s:%d:%d", e.Msg, e.Source.Name, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
	}
	annotate(&sb, e.Source, e.Pos)
	return sb.String()
}

// ParseError reports the first grammar violation: what was expected, what
// was found, and the parser's current position. No partial AST accompanies it.
type ParseError struct {
	Msg string
	Pos Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
}

// annotate appends the offending source line with a caret under the column.
func annotate(sb *strings.Builder, source *Source, pos Pos) {
	if source == nil {
		return
	}
	idx := pos.Line - 1
	if idx < 0 || idx >= len(source.Lines) {
		return
	}
	line := source.Lines[idx]
	sb.WriteString("\n")
	sb.WriteString(line)
	sb.WriteString("\n")

	col := pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for k := 0; k < runeWidth(r); k++ {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^")
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
