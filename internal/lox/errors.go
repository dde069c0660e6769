package lox

import (
	"fmt"
	"strings"

	"github.com/ltungv/lox/loxparse/internal/token"
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind uint8

const (
	// LexicalError is reported by the scanner for input that matches no token
	// rule. Scanning continues past it.
	LexicalError DiagnosticKind = iota
	// SyntaxError is reported by the parser when the token stream does not
	// match the production required at the current position.
	SyntaxError
	// InternalError signals a defect in the front-end itself, never a problem
	// with the user's program.
	InternalError
)

func (k DiagnosticKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case InternalError:
		return "internal error"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", k)
}

// Diagnostic is a structured error record with additional information on
// where the error occured.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Span    token.Span
	Line    int
	// Lexeme is the source text of the offending token, empty at end of input.
	Lexeme string
	// AtEOF is set when the error is only caused by the input ending: a
	// syntax error at the EOF token or a string left open until the end.
	AtEOF bool
	// Expected lists the token types that would have been accepted, it is
	// only set for syntax errors.
	Expected []token.Type
}

func newScanError(tok *token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Kind:    LexicalError,
		Message: message,
		Span:    tok.Span,
		Line:    tok.Line,
		Lexeme:  tok.Lexeme,
	}
}

func newParseError(tok *token.Token, message string, expected ...token.Type) *Diagnostic {
	return &Diagnostic{
		Kind:     SyntaxError,
		Message:  message,
		Span:     tok.Span,
		Line:     tok.Line,
		Lexeme:   tok.Lexeme,
		AtEOF:    tok.Typ == token.EOF,
		Expected: expected,
	}
}

func newInternalError(tok *token.Token, message string) *Diagnostic {
	d := newParseError(tok, message)
	d.Kind = InternalError
	return d
}

func (d *Diagnostic) Error() string {
	switch {
	case d.Kind == LexicalError:
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	case d.Kind == InternalError:
		return fmt.Sprintf("[line %d] Internal error at '%s': %s", d.Line, d.Lexeme, d.Message)
	case d.AtEOF:
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Lexeme, d.Message)
}

// ExpectedString renders the expected set, e.g. "';'" or
// "one of identifier, number, '('". It is empty when nothing is recorded.
func (d *Diagnostic) ExpectedString() string {
	switch len(d.Expected) {
	case 0:
		return ""
	case 1:
		return d.Expected[0].Quoted()
	}
	quoted := make([]string, len(d.Expected))
	for i, typ := range d.Expected {
		quoted[i] = typ.Quoted()
	}
	return "one of " + strings.Join(quoted, ", ")
}

// ParseError is returned when the source is not a valid program. It carries
// every diagnostic collected during the parse, in the order they were found.
type ParseError struct {
	Diagnostics []*Diagnostic
}

func (err *ParseError) Error() string {
	msgs := make([]string, len(err.Diagnostics))
	for i, d := range err.Diagnostics {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}

// First returns the earliest reported diagnostic.
func (err *ParseError) First() *Diagnostic {
	if len(err.Diagnostics) == 0 {
		return nil
	}
	return err.Diagnostics[0]
}

// Syntax returns the syntax and internal diagnostics, skipping lexical ones.
func (err *ParseError) Syntax() []*Diagnostic {
	var diags []*Diagnostic
	for _, d := range err.Diagnostics {
		if d.Kind != LexicalError {
			diags = append(diags, d)
		}
	}
	return diags
}

// Incomplete reports whether the parse failed only because the input ended
// too early, which lets a REPL keep reading lines. A syntax error at a string
// left open until the end of input counts as such.
func (err *ParseError) Incomplete() bool {
	if len(err.Diagnostics) == 0 {
		return false
	}
	var openString *token.Span
	for _, d := range err.Diagnostics {
		d := d
		if d.Kind == LexicalError && d.AtEOF {
			openString = &d.Span
		}
	}
	for _, d := range err.Diagnostics {
		switch {
		case d.Kind == InternalError:
			return false
		case d.AtEOF:
		case d.Kind == SyntaxError && openString != nil && d.Span == *openString:
		default:
			return false
		}
	}
	return true
}
