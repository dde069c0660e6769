package ast

import (
	"math"

	"github.com/goccy/go-json"
)

// The JSON encoding tags every variant externally: unit variants are bare
// strings ("Nil", "This"), other variants are single-key objects whose key is
// the variant name, e.g. {"Binary":{"left":...,"operator":"Add","right":...}}.

func tagged(tag string, body interface{}) ([]byte, error) {
	return json.Marshal(map[string]interface{}{tag: body})
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case BoolKind:
		return tagged("Bool", v.Bool)
	case NumberKind:
		// JSON has no representation for non-finite numbers.
		if math.IsInf(v.Number, 0) || math.IsNaN(v.Number) {
			return tagged("Number", nil)
		}
		return tagged("Number", v.Number)
	case StringKind:
		return tagged("String", v.Str)
	}
	return []byte(`"Nil"`), nil
}

func (expr *LiteralExpr) MarshalJSON() ([]byte, error) {
	return tagged("Literal", expr.Value)
}

func (expr *VariableExpr) MarshalJSON() ([]byte, error) {
	return tagged("Variable", expr.Name)
}

func (expr *BinaryExpr) MarshalJSON() ([]byte, error) {
	return tagged("Binary", struct {
		Left     Expr     `json:"left"`
		Operator BinaryOp `json:"operator"`
		Right    Expr     `json:"right"`
	}{expr.Left, expr.Op, expr.Right})
}

func (expr *UnaryExpr) MarshalJSON() ([]byte, error) {
	return tagged("Unary", struct {
		Operator UnaryOp `json:"operator"`
		Operand  Expr    `json:"operand"`
	}{expr.Op, expr.Operand})
}

func (expr *GroupingExpr) MarshalJSON() ([]byte, error) {
	return tagged("Grouping", expr.Inner)
}

func (expr *AssignExpr) MarshalJSON() ([]byte, error) {
	return tagged("Assignment", struct {
		Name  string `json:"name"`
		Value Expr   `json:"value"`
	}{expr.Name, expr.Value})
}

func (expr *CallExpr) MarshalJSON() ([]byte, error) {
	return tagged("Call", struct {
		Callee    Expr   `json:"callee"`
		Arguments []Expr `json:"arguments"`
	}{expr.Callee, expr.Args})
}

func (expr *GetExpr) MarshalJSON() ([]byte, error) {
	return tagged("Get", struct {
		Object Expr   `json:"object"`
		Name   string `json:"name"`
	}{expr.Object, expr.Name})
}

func (expr *SetExpr) MarshalJSON() ([]byte, error) {
	return tagged("Set", struct {
		Object Expr   `json:"object"`
		Name   string `json:"name"`
		Value  Expr   `json:"value"`
	}{expr.Object, expr.Name, expr.Value})
}

func (expr *ThisExpr) MarshalJSON() ([]byte, error) {
	return []byte(`"This"`), nil
}

func (expr *SuperExpr) MarshalJSON() ([]byte, error) {
	return tagged("Super", struct {
		Method string `json:"method"`
	}{expr.Method})
}

func (stmt *ExpressionStmt) MarshalJSON() ([]byte, error) {
	return tagged("Expression", stmt.Expression)
}

func (stmt *PrintStmt) MarshalJSON() ([]byte, error) {
	return tagged("Print", stmt.Expression)
}

func (stmt *VarStmt) MarshalJSON() ([]byte, error) {
	return tagged("VarDeclaration", struct {
		Name        string `json:"name"`
		Initializer Expr   `json:"initializer"`
	}{stmt.Name, stmt.Initializer})
}

func (stmt *BlockStmt) MarshalJSON() ([]byte, error) {
	return tagged("Block", stmt.Statements)
}

func (stmt *IfStmt) MarshalJSON() ([]byte, error) {
	return tagged("If", struct {
		Condition  Expr `json:"condition"`
		ThenBranch Stmt `json:"then_branch"`
		ElseBranch Stmt `json:"else_branch"`
	}{stmt.Condition, stmt.ThenBranch, stmt.ElseBranch})
}

func (stmt *WhileStmt) MarshalJSON() ([]byte, error) {
	return tagged("While", struct {
		Condition Expr `json:"condition"`
		Body      Stmt `json:"body"`
	}{stmt.Condition, stmt.Body})
}

func (stmt *ForStmt) MarshalJSON() ([]byte, error) {
	return tagged("For", struct {
		Initializer Stmt `json:"initializer"`
		Condition   Expr `json:"condition"`
		Increment   Expr `json:"increment"`
		Body        Stmt `json:"body"`
	}{stmt.Initializer, stmt.Condition, stmt.Increment, stmt.Body})
}

func (stmt *FunctionStmt) MarshalJSON() ([]byte, error) {
	return tagged("Function", struct {
		Name   string   `json:"name"`
		Params []string `json:"params"`
		Body   []Stmt   `json:"body"`
	}{stmt.Name, stmt.Params, stmt.Body})
}

func (stmt *ReturnStmt) MarshalJSON() ([]byte, error) {
	return tagged("Return", struct {
		Value Expr `json:"value"`
	}{stmt.Value})
}

func (stmt *ClassStmt) MarshalJSON() ([]byte, error) {
	var superclass *string
	if stmt.Superclass != "" {
		superclass = &stmt.Superclass
	}
	return tagged("Class", struct {
		Name       string          `json:"name"`
		Superclass *string         `json:"superclass"`
		Methods    []*FunctionStmt `json:"methods"`
	}{stmt.Name, superclass, stmt.Methods})
}

// MarshalProgram encodes the program with two-space indentation.
func MarshalProgram(program *Program) ([]byte, error) {
	return json.MarshalIndent(program, "", "  ")
}
