package token

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase. Tokens are never mutated once the
// scanner hands them out.
type Token struct {
	Typ    Type
	Lexeme string
	Span   Span
	Line   int
}

// New creates a new token
func New(typ Type, lexeme string, span Span, line int) *Token {
	return &Token{typ, lexeme, span, line}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Typ, t.Lexeme, t.Span)
}

// Type is a just a wrapped string used to represent token's type
type Type string

const (
	// Single-character tokens
	LEFT_PAREN  Type = "("
	RIGHT_PAREN Type = ")"
	MINUS       Type = "-"
	PLUS        Type = "+"
	SEMICOLON   Type = ";"
	SLASH       Type = "/"
	STAR        Type = "*"

	// One or two chracter tokens
	BANG          Type = "!"
	BANG_EQUAL    Type = "!="
	EQUAL         Type = "="
	EQUAL_EQUAL   Type = "=="
	GREATER       Type = ">"
	GREATER_EQUAL Type = ">="
	LESS          Type = "<"
	LESS_EQUAL    Type = "<="

	// Literals
	IDENTIFIER Type = "identifier"
	STRING     Type = "string"
	NUMBER     Type = "number"

	// Keywords
	AND   Type = "and"
	FALSE Type = "false"
	NIL   Type = "nil"
	OR    Type = "or"
	PRINT Type = "print"
	TRUE  Type = "true"
	VAR   Type = "var"

	// Sentinels
	ERROR Type = "error"
	EOF   Type = "eof"
)

// Keywords maps every reserved word to its token type. Identifier-shaped runs
// are looked up here after being scanned, the match is exact and case-sensitive.
var Keywords = map[string]Type{
	"and":   AND,
	"false": FALSE,
	"nil":   NIL,
	"or":    OR,
	"print": PRINT,
	"true":  TRUE,
	"var":   VAR,
}

// IsKeyword reports whether typ is one of the reserved words.
func (typ Type) IsKeyword() bool {
	_, ok := Keywords[string(typ)]
	return ok
}

// Quoted returns the type the way diagnostics show it: punctuation and
// keywords between single quotes, token classes as-is.
func (typ Type) Quoted() string {
	switch typ {
	case IDENTIFIER, STRING, NUMBER, ERROR, EOF:
		return string(typ)
	}
	return "'" + string(typ) + "'"
}
