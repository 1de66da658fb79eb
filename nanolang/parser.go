package nanolang

import (
	"fmt"
	"strconv"
)

// Parser turns a token sequence into the ordered list of top-level
// statements. It keeps a single forward cursor with peek offsets 0 and 1
// only, never backtracks, and stops at the first grammar violation. One
// instance serves one Parse call.
//
// Position bookkeeping follows the token cursor: only next advances
// line/column, match does not, so reported positions can lag behind tokens
// skipped by match. That drift is part of the observable diagnostics.
type Parser struct {
	tokens []Token
	index  int
	line   int
	column int

	// MaxDepth bounds statement/expression nesting; zero means unbounded.
	MaxDepth int
	depth    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		line:   1,
		column: 1,
	}
}

// Parse parses the whole token sequence. On error no partial result is
// returned.
func Parse(tokens []Token) ([]Node, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) isAtEnd() bool {
	return p.index >= len(p.tokens)
}

func (p *Parser) peek(offset int) (Token, bool) {
	if p.index+offset >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.index+offset], true
}

func (p *Parser) next() (Token, bool) {
	token, ok := p.peek(0)
	if !ok {
		return Token{}, false
	}
	p.index++
	if token.Kind == TokenNewline {
		p.line++
		p.column = 1
	} else {
		p.column += len(token.Value)
	}
	return token, true
}

// match consumes the current token when it has the wanted kind and, for a
// non-empty value, the wanted lexeme.
func (p *Parser) match(kind TokenKind, value string) (Token, bool) {
	token, ok := p.peek(0)
	if !ok {
		return Token{}, false
	}
	if token.Kind != kind || (value != "" && token.Value != value) {
		return Token{}, false
	}
	p.index++
	return token, true
}

func (p *Parser) expect(kind TokenKind, value string) (Token, error) {
	if token, ok := p.match(kind, value); ok {
		return token, nil
	}
	want := kind.String()
	if value != "" {
		want += fmt.Sprintf(" %q", value)
	}
	found, ok := p.peek(0)
	if !ok {
		return Token{}, p.errorf("expected %s but found end of input", want)
	}
	return Token{}, p.errorf("expected %s but found %s %q", want, found.Kind, found.Value)
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{
		Msg: fmt.Sprintf(format, args...),
		Pos: Pos{Line: p.line, Column: p.column},
	}
}

func (p *Parser) consumeNewlines() {
	for {
		if _, ok := p.match(TokenNewline, ""); !ok {
			return
		}
	}
}

func (p *Parser) consumeComments() {
	for {
		token, ok := p.peek(0)
		if !ok || token.Kind != TokenComment {
			return
		}
		p.next()
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.MaxDepth > 0 && p.depth > p.MaxDepth {
		return p.errorf("too deeply nested")
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) Parse() ([]Node, error) {
	var statements []Node
	for !p.isAtEnd() {
		p.consumeNewlines()
		if p.isAtEnd() {
			break
		}
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}
	return statements, nil
}

func (p *Parser) parseStatement() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.consumeNewlines()

	token, ok := p.peek(0)
	if !ok {
		return nil, p.errorf("expected statement but found end of input")
	}

	// Comments hide only at expression positions. A comment where a
	// statement should start is a hard failure.
	if token.Kind == TokenComment {
		return nil, p.errorf("expected statement but found comment %q", token.Value)
	}

	if token.Kind == TokenKeyword {
		switch token.Value {
		case "var":
			p.next()
			return p.parseVarDeclaration()
		case "fn":
			p.next()
			return p.parseFunction()
		case "return":
			p.next()
			return p.parseReturn()
		default:
			return nil, p.errorf("unknown keyword %q", token.Value)
		}
	}

	return p.parseExpression()
}

func (p *Parser) parseVarDeclaration() (Node, error) {
	name, err := p.expect(TokenIdentifier, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenOperator, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Var{
		Name:  name.Value,
		Value: value,
	}, nil
}

func (p *Parser) parseFunction() (Node, error) {
	name, err := p.expect(TokenIdentifier, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelimiter, "("); err != nil {
		return nil, err
	}

	var params []string
	if _, ok := p.match(TokenDelimiter, ")"); !ok {
		for {
			param, err := p.expect(TokenIdentifier, "")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Value)
			if _, ok := p.match(TokenDelimiter, ","); !ok {
				break
			}
		}
		if _, err := p.expect(TokenDelimiter, ")"); err != nil {
			return nil, err
		}
	}

	p.consumeNewlines()
	if _, err := p.expect(TokenDelimiter, "{"); err != nil {
		return nil, err
	}

	var body []Node
	for {
		p.consumeNewlines()
		if p.isAtEnd() {
			return nil, p.errorf("expected %q to close function body but found end of input", "}")
		}
		if _, ok := p.match(TokenDelimiter, "}"); ok {
			break
		}
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, statement)
	}

	return &Function{
		Name:   name.Value,
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) parseReturn() (Node, error) {
	p.consumeNewlines()
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Return{
		Value: value,
	}, nil
}

func (p *Parser) parseExpression() (Node, error) {
	return p.parseAddition()
}

func (p *Parser) parseAddition() (Node, error) {
	left, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}
	for {
		token, ok := p.peek(0)
		if !ok || token.Kind != TokenOperator || (token.Value != "+" && token.Value != "-") {
			break
		}
		p.next()
		right, err := p.parseMultiplication()
		if err != nil {
			return nil, err
		}
		left = &Binary{
			Op:    token.Value,
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseMultiplication() (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		token, ok := p.peek(0)
		if !ok || token.Kind != TokenOperator || (token.Value != "*" && token.Value != "/") {
			break
		}
		p.next()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &Binary{
			Op:    token.Value,
			Left:  left,
			Right: right,
		}
	}
	return left, nil
}

func (p *Parser) parseGrouping() (Node, error) {
	if _, err := p.expect(TokenDelimiter, "("); err != nil {
		return nil, err
	}
	expression, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelimiter, ")"); err != nil {
		return nil, err
	}
	return expression, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	p.consumeComments()

	token, ok := p.peek(0)
	if !ok {
		return nil, p.errorf("expected expression but found end of input")
	}

	switch token.Kind {

	case TokenNewline:
		// A newline where an expression should be restarts statement
		// parsing instead of failing, so an input may split a statement
		// across lines after an operator or '='.
		p.consumeNewlines()
		return p.parseStatement()

	case TokenNumber:
		p.next()
		value, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			return nil, p.errorf("invalid number literal %q", token.Value)
		}
		return &Number{Value: value}, nil

	case TokenString:
		p.next()
		return &Str{Value: token.Value}, nil

	case TokenIdentifier:
		if peeked, ok := p.peek(1); ok &&
			peeked.Kind == TokenDelimiter && peeked.Value == "(" {
			return p.parseCall()
		}
		p.next()
		return &Identifier{Name: token.Value}, nil

	case TokenDelimiter:
		if token.Value == "(" {
			return p.parseGrouping()
		}
	}

	return nil, p.errorf("unexpected %s %q in expression", token.Kind, token.Value)
}

func (p *Parser) parseCall() (Node, error) {
	callee, err := p.expect(TokenIdentifier, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelimiter, "("); err != nil {
		return nil, err
	}

	var args []Node
	if _, ok := p.match(TokenDelimiter, ")"); !ok {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if _, ok := p.match(TokenDelimiter, ","); !ok {
				break
			}
		}
		if _, err := p.expect(TokenDelimiter, ")"); err != nil {
			return nil, err
		}
	}

	return &Call{
		Callee: callee.Value,
		Args:   args,
	}, nil
}
