package nanolang

import (
	"fmt"
	"strings"
	"unicode"
)

// Tokenizer scans one source buffer left to right with a two-rune lookahead
// window. Not safe for concurrent use; each instance is driven by one caller
// to completion.
type Tokenizer struct {
	source *Source
	index  int
	line   int
	column int
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize converts the whole source into its token sequence, stopping at
// the first lexical error.
func Tokenize(source *Source) ([]Token, error) {
	return NewTokenizer(source).Tokenize()
}

func (t *Tokenizer) isAtEnd() bool {
	return t.index >= len(t.source.runes)
}

func (t *Tokenizer) peek(offset int) rune {
	if t.index+offset >= len(t.source.runes) {
		return 0
	}
	return t.source.runes[t.index+offset]
}

func (t *Tokenizer) next() rune {
	if t.isAtEnd() {
		return 0
	}
	r := t.source.runes[t.index]
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
	t.index++
	return r
}

func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token
	for !t.isAtEnd() {
		r := t.peek(0)
		switch {

		case unicode.IsSpace(r):
			t.next()
			if r == '\n' {
				tokens = append(tokens, Token{Value: "[newline]", Kind: TokenNewline})
			}

		case unicode.IsDigit(r):
			tokens = append(tokens, t.readNumber())

		case unicode.IsLetter(r):
			tokens = append(tokens, t.readIdentifierOrKeyword())

		case strings.ContainsRune(delimiters, r):
			t.next()
			tokens = append(tokens, Token{Value: string(r), Kind: TokenDelimiter})

		case r == '"':
			token, err := t.readString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case r == '/':
			tokens = append(tokens, t.readComment())

		case operators[string(r)]:
			tokens = append(tokens, t.readOperator())

		default:
			return nil, &LexError{
				Msg:    fmt.Sprintf("unknown character %q", r),
				Char:   r,
				Pos:    Pos{Line: t.line, Column: t.column},
				Source: t.source,
			}
		}
	}
	return tokens, nil
}

func (t *Tokenizer) readNumber() Token {
	start := t.index
	for unicode.IsDigit(t.peek(0)) {
		t.next()
	}
	return Token{
		Value: string(t.source.runes[start:t.index]),
		Kind:  TokenNumber,
	}
}

func (t *Tokenizer) readIdentifierOrKeyword() Token {
	start := t.index
	for unicode.IsLetter(t.peek(0)) || unicode.IsDigit(t.peek(0)) {
		t.next()
	}
	value := string(t.source.runes[start:t.index])
	kind := TokenIdentifier
	if keywords[value] {
		kind = TokenKeyword
	}
	return Token{Value: value, Kind: kind}
}

func (t *Tokenizer) readString() (Token, error) {
	t.next() // opening quote
	var sb strings.Builder
	for !t.isAtEnd() && t.peek(0) != '"' {
		// raw content, no escape processing
		sb.WriteRune(t.next())
	}
	if t.isAtEnd() {
		return Token{}, &LexError{
			Msg:    "unterminated string literal",
			Char:   '"',
			Pos:    Pos{Line: t.line, Column: t.column},
			Source: t.source,
		}
	}
	t.next() // closing quote
	return Token{Value: sb.String(), Kind: TokenString}, nil
}

// readOperator prefers the two-character form when the current rune combined
// with the next one is also an operator.
func (t *Tokenizer) readOperator() Token {
	first := t.peek(0)
	combined := string(first) + string(t.peek(1))
	if operators[combined] {
		t.next()
		t.next()
		return Token{Value: combined, Kind: TokenOperator}
	}
	t.next()
	return Token{Value: string(first), Kind: TokenOperator}
}

// readComment disambiguates '/' by its follower: '//' consumes a line comment
// up to but excluding the newline, '/*' scans for the closing sequence
// without consuming it, anything else is the division operator. The block
// terminator is not consumed, so a block comment token is followed by stray
// '*' and '/' operator tokens.
func (t *Tokenizer) readComment() Token {
	switch t.peek(1) {

	case '/':
		t.next()
		t.next()
		var sb strings.Builder
		for !t.isAtEnd() && t.peek(0) != '\n' {
			sb.WriteRune(t.next())
		}
		return Token{Value: sb.String(), Kind: TokenComment}

	case '*':
		t.next()
		t.next()
		var sb strings.Builder
		for !t.isAtEnd() && !(t.peek(0) == '*' && t.peek(1) == '/') {
			sb.WriteRune(t.next())
		}
		return Token{Value: sb.String(), Kind: TokenComment}

	default:
		t.next()
		return Token{Value: "/", Kind: TokenOperator}
	}
}
