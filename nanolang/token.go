package nanolang

// Token is a single lexical unit: the exact source substring plus its kind.
// Tokens are immutable once produced; their order is source order.
type Token struct {
	Value string
	Kind  TokenKind
}

type TokenKind uint8

const (
	TokenIdentifier TokenKind = iota
	TokenKeyword
	TokenNumber
	TokenString
	TokenOperator
	TokenDelimiter
	TokenComment
	TokenNewline
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdentifier:
		return "identifier"
	case TokenKeyword:
		return "keyword"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenOperator:
		return "operator"
	case TokenDelimiter:
		return "delimiter"
	case TokenComment:
		return "comment"
	case TokenNewline:
		return "newline"
	}
	return "invalid"
}

var keywords = map[string]bool{
	"if":     true,
	"else":   true,
	"elseif": true,
	"var":    true,
	"const":  true,
	"fn":     true,
	"return": true,
	"for":    true,
	"in":     true,
	"while":  true,
	"once":   true,
	"true":   true,
	"false":  true,
}

var operators = map[string]bool{
	"+":  true,
	"-":  true,
	"*":  true,
	"/":  true,
	"=":  true,
	"+=": true,
	"-=": true,
	"*=": true,
	"/=": true,
	"==": true,
}

const delimiters = "(){}.,;"
