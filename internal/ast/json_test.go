package ast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMarshalProgram(t *testing.T) {
	program := NewProgram([]Stmt{
		NewVarStmt("x", nil),
		NewVarStmt("sum", NewBinaryExpr(NewVariableExpr("a"), Add, num(2))),
		NewPrintStmt(NewUnaryExpr(Not, NewLiteralExpr(BoolValue(true)))),
		NewExpressionStmt(NewAssignExpr("x", NewGroupingExpr(NewLiteralExpr(NilValue())))),
		NewPrintStmt(str("hi")),
	})

	out, err := MarshalProgram(program)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(out))

	assert := assert.New(t)
	doc := gjson.ParseBytes(out)
	assert.Equal(int64(5), doc.Get("statements.#").Int())

	assert.Equal("x", doc.Get("statements.0.VarDeclaration.name").String())
	assert.Equal(gjson.Null, doc.Get("statements.0.VarDeclaration.initializer").Type)

	binary := doc.Get("statements.1.VarDeclaration.initializer.Binary")
	assert.Equal("Add", binary.Get("operator").String())
	assert.Equal("a", binary.Get("left.Variable").String())
	assert.Equal(2.0, binary.Get("right.Literal.Number").Float())

	unary := doc.Get("statements.2.Print.Unary")
	assert.Equal("Not", unary.Get("operator").String())
	assert.True(unary.Get("operand.Literal.Bool").Bool())

	assign := doc.Get("statements.3.Expression.Assignment")
	assert.Equal("x", assign.Get("name").String())
	assert.Equal("Nil", assign.Get("value.Grouping.Literal").String())

	assert.Equal("hi", doc.Get("statements.4.Print.Literal.String").String())
}

func TestMarshalEmptyProgram(t *testing.T) {
	out, err := MarshalProgram(NewProgram(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"statements":[]}`, string(out))
}

func TestMarshalNonFiniteNumber(t *testing.T) {
	out, err := MarshalProgram(NewProgram([]Stmt{NewPrintStmt(num(math.Inf(1)))}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"statements":[{"Print":{"Literal":{"Number":null}}}]}`, string(out))
}

func TestMarshalDeclaredVariants(t *testing.T) {
	program := NewProgram([]Stmt{
		NewClassStmt("B", "", []*FunctionStmt{
			NewFunctionStmt("init", nil, []Stmt{
				NewExpressionStmt(NewSetExpr(NewThisExpr(), "x", NewCallExpr(NewSuperExpr("make"), nil))),
			}),
		}),
	})

	out, err := MarshalProgram(program)
	require.NoError(t, err)

	assert := assert.New(t)
	class := gjson.GetBytes(out, "statements.0.Class")
	assert.Equal("B", class.Get("name").String())
	assert.Equal(gjson.Null, class.Get("superclass").Type)
	set := class.Get("methods.0.Function.body.0.Expression.Set")
	assert.Equal("This", set.Get("object").String())
	assert.Equal("make", set.Get("value.Call.callee.Super.method").String())
}
