package lox

import (
	"github.com/ltungv/lox/loxparse/internal/ast"
	"github.com/ltungv/lox/loxparse/internal/token"
)

// Parse scans and parses source. It returns the program when the source is
// free of lexical and syntax errors, otherwise a *ParseError carrying the
// diagnostics. Parse keeps no state between calls and is safe for concurrent
// use.
func Parse(source string, opts ...ParserOptions) (*ast.Program, error) {
	collector := NewDiagnosticCollector()
	tokens := NewScanner(source, collector).Scan()
	program := NewParser(tokens, collector, opts...).Parse()
	if err := collector.Err(); err != nil {
		return nil, err
	}
	return program, nil
}

// Tokenize runs the scanner alone and returns every token, including error
// tokens and the final EOF, with the lexical diagnostics found along the way.
func Tokenize(source string) ([]*token.Token, []*Diagnostic) {
	collector := NewDiagnosticCollector()
	tokens := NewScanner(source, collector).Scan()
	return tokens, collector.Diagnostics()
}
