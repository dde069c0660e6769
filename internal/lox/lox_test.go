package lox

import (
	"github.com/ltungv/lox/loxparse/internal/ast"
	"github.com/ltungv/lox/loxparse/internal/token"
)

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func tok(typ token.Type, lexeme string, start int, line int) *token.Token {
	return token.New(typ, lexeme, token.Span{Start: start, End: start + len(lexeme)}, line)
}

func tokEOF(offset int, line int) *token.Token {
	return token.New(token.EOF, "", token.Span{Start: offset, End: offset}, line)
}

func num(n float64) ast.Expr {
	return ast.NewLiteralExpr(ast.NumberValue(n))
}

func str(s string) ast.Expr {
	return ast.NewLiteralExpr(ast.StringValue(s))
}

func boolean(b bool) ast.Expr {
	return ast.NewLiteralExpr(ast.BoolValue(b))
}

func variable(name string) ast.Expr {
	return ast.NewVariableExpr(name)
}

func binary(left ast.Expr, op ast.BinaryOp, right ast.Expr) ast.Expr {
	return ast.NewBinaryExpr(left, op, right)
}

func exprStmt(expr ast.Expr) ast.Stmt {
	return ast.NewExpressionStmt(expr)
}
