package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(n float64) Expr {
	return NewLiteralExpr(NumberValue(n))
}

func TestExprEqual(t *testing.T) {
	testCases := []struct {
		a, b  Expr
		equal bool
	}{
		{num(1), num(1), true},
		{num(1), num(2), false},
		{nil, nil, true},
		{num(1), nil, false},
		{NewVariableExpr("a"), NewVariableExpr("a"), true},
		{NewVariableExpr("a"), NewVariableExpr("b"), false},
		{
			NewBinaryExpr(num(1), Add, num(2)),
			NewBinaryExpr(num(1), Add, num(2)),
			true,
		},
		{
			NewBinaryExpr(num(1), Add, num(2)),
			NewBinaryExpr(num(1), Subtract, num(2)),
			false,
		},
		{
			NewBinaryExpr(NewBinaryExpr(num(8), Subtract, num(4)), Subtract, num(2)),
			NewBinaryExpr(num(8), Subtract, NewBinaryExpr(num(4), Subtract, num(2))),
			false,
		},
		{NewUnaryExpr(Not, num(1)), NewUnaryExpr(Not, num(1)), true},
		{NewUnaryExpr(Not, num(1)), NewUnaryExpr(Minus, num(1)), false},
		{NewGroupingExpr(num(1)), num(1), false},
		{NewAssignExpr("x", num(1)), NewAssignExpr("x", num(1)), true},
		{NewAssignExpr("x", num(1)), NewAssignExpr("y", num(1)), false},
		{
			NewCallExpr(NewVariableExpr("f"), []Expr{num(1)}),
			NewCallExpr(NewVariableExpr("f"), []Expr{num(1)}),
			true,
		},
		{
			NewCallExpr(NewVariableExpr("f"), []Expr{num(1)}),
			NewCallExpr(NewVariableExpr("f"), nil),
			false,
		},
		{NewGetExpr(NewThisExpr(), "a"), NewGetExpr(NewThisExpr(), "a"), true},
		{NewSetExpr(NewThisExpr(), "a", num(1)), NewSetExpr(NewThisExpr(), "a", num(2)), false},
		{NewSuperExpr("m"), NewSuperExpr("m"), true},
		{NewThisExpr(), NewSuperExpr("m"), false},
	}

	assert := assert.New(t)
	printer := AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.equal, ExprEqual(tc.a, tc.b), "%s vs %s", printer.Print(tc.a), printer.Print(tc.b))
	}
}

func TestStmtEqual(t *testing.T) {
	assert := assert.New(t)

	assert.True(StmtEqual(NewVarStmt("x", nil), NewVarStmt("x", nil)))
	assert.False(StmtEqual(NewVarStmt("x", nil), NewVarStmt("x", num(1))))
	assert.False(StmtEqual(NewPrintStmt(num(1)), NewExpressionStmt(num(1))))
	assert.True(StmtEqual(
		NewBlockStmt([]Stmt{NewPrintStmt(num(1))}),
		NewBlockStmt([]Stmt{NewPrintStmt(num(1))}),
	))
	assert.True(StmtEqual(
		NewIfStmt(num(1), NewPrintStmt(num(2)), nil),
		NewIfStmt(num(1), NewPrintStmt(num(2)), nil),
	))
	assert.False(StmtEqual(
		NewIfStmt(num(1), NewPrintStmt(num(2)), nil),
		NewIfStmt(num(1), NewPrintStmt(num(2)), NewPrintStmt(num(3))),
	))
	fn := NewFunctionStmt("f", []string{"a"}, []Stmt{NewReturnStmt(NewVariableExpr("a"))})
	assert.True(StmtEqual(
		NewClassStmt("A", "B", []*FunctionStmt{fn}),
		NewClassStmt("A", "B", []*FunctionStmt{
			NewFunctionStmt("f", []string{"a"}, []Stmt{NewReturnStmt(NewVariableExpr("a"))}),
		}),
	))
	assert.False(StmtEqual(
		NewClassStmt("A", "", []*FunctionStmt{fn}),
		NewClassStmt("A", "B", []*FunctionStmt{fn}),
	))
}

func TestProgramEqual(t *testing.T) {
	assert := assert.New(t)

	a := NewProgram([]Stmt{NewVarStmt("a", num(10)), NewPrintStmt(NewVariableExpr("a"))})
	b := NewProgram([]Stmt{NewVarStmt("a", num(10)), NewPrintStmt(NewVariableExpr("a"))})
	reordered := NewProgram([]Stmt{NewPrintStmt(NewVariableExpr("a")), NewVarStmt("a", num(10))})

	assert.True(a.Equal(b))
	assert.False(a.Equal(reordered))
	assert.False(a.Equal(NewProgram(nil)))
	assert.True(NewProgram(nil).Equal(NewProgram([]Stmt{})))
	assert.False(a.Equal(nil))
}

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	empty := NewProgram(nil)
	assert.True(empty.IsEmpty())
	assert.Equal(0, empty.Len())
	assert.NotNil(empty.Statements)

	p := NewProgram([]Stmt{NewPrintStmt(str("test"))})
	assert.False(p.IsEmpty())
	assert.Equal(1, p.Len())
	assert.Equal("Program with 1 statements:\n  1: (print \"test\")\n", p.String())
}

func str(s string) Expr {
	return NewLiteralExpr(StringValue(s))
}
