package ast

import (
	"fmt"
	"strings"
)

// AstPrinter renders trees as parenthesized prefix notation, e.g.
// "(+ 1 (* 2 3))". It implements both ExprVisitor and StmtVisitor.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	if expr == nil {
		return "_"
	}
	return expr.Accept(printer).(string)
}

func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	if stmt == nil {
		return "_"
	}
	return stmt.Accept(printer).(string)
}

func (printer *AstPrinter) parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(part)
	}
	b.WriteByte(')')
	return b.String()
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) interface{} {
	return expr.Value.String()
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) interface{} {
	return expr.Name
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	return printer.parenthesize(expr.Op.String(), printer.Print(expr.Left), printer.Print(expr.Right))
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	return printer.parenthesize(expr.Op.String(), printer.Print(expr.Operand))
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) interface{} {
	return printer.parenthesize("group", printer.Print(expr.Inner))
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) interface{} {
	return printer.parenthesize("=", expr.Name, printer.Print(expr.Value))
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) interface{} {
	parts := []string{printer.Print(expr.Callee)}
	for _, arg := range expr.Args {
		parts = append(parts, printer.Print(arg))
	}
	return printer.parenthesize("call", parts...)
}

func (printer *AstPrinter) VisitGetExpr(expr *GetExpr) interface{} {
	return printer.parenthesize(".", printer.Print(expr.Object), expr.Name)
}

func (printer *AstPrinter) VisitSetExpr(expr *SetExpr) interface{} {
	target := printer.parenthesize(".", printer.Print(expr.Object), expr.Name)
	return printer.parenthesize("=", target, printer.Print(expr.Value))
}

func (printer *AstPrinter) VisitThisExpr(expr *ThisExpr) interface{} {
	return "this"
}

func (printer *AstPrinter) VisitSuperExpr(expr *SuperExpr) interface{} {
	return printer.parenthesize("super", expr.Method)
}

func (printer *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) interface{} {
	return printer.parenthesize("expr", printer.Print(stmt.Expression))
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) interface{} {
	return printer.parenthesize("print", printer.Print(stmt.Expression))
}

func (printer *AstPrinter) VisitVarStmt(stmt *VarStmt) interface{} {
	if stmt.Initializer == nil {
		return printer.parenthesize("var", stmt.Name)
	}
	return printer.parenthesize("var", stmt.Name, printer.Print(stmt.Initializer))
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) interface{} {
	return printer.parenthesize("block", printer.stmts(stmt.Statements)...)
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) interface{} {
	parts := []string{printer.Print(stmt.Condition), printer.PrintStmt(stmt.ThenBranch)}
	if stmt.ElseBranch != nil {
		parts = append(parts, printer.PrintStmt(stmt.ElseBranch))
	}
	return printer.parenthesize("if", parts...)
}

func (printer *AstPrinter) VisitWhileStmt(stmt *WhileStmt) interface{} {
	return printer.parenthesize("while", printer.Print(stmt.Condition), printer.PrintStmt(stmt.Body))
}

func (printer *AstPrinter) VisitForStmt(stmt *ForStmt) interface{} {
	return printer.parenthesize(
		"for",
		printer.PrintStmt(stmt.Initializer),
		printer.Print(stmt.Condition),
		printer.Print(stmt.Increment),
		printer.PrintStmt(stmt.Body),
	)
}

func (printer *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) interface{} {
	params := "(" + strings.Join(stmt.Params, " ") + ")"
	parts := append([]string{stmt.Name, params}, printer.stmts(stmt.Body)...)
	return printer.parenthesize("fun", parts...)
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) interface{} {
	if stmt.Value == nil {
		return printer.parenthesize("return")
	}
	return printer.parenthesize("return", printer.Print(stmt.Value))
}

func (printer *AstPrinter) VisitClassStmt(stmt *ClassStmt) interface{} {
	parts := []string{stmt.Name}
	if stmt.Superclass != "" {
		parts = append(parts, "<", stmt.Superclass)
	}
	for _, method := range stmt.Methods {
		parts = append(parts, printer.PrintStmt(method))
	}
	return printer.parenthesize("class", parts...)
}

func (printer *AstPrinter) stmts(stmts []Stmt) []string {
	parts := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, printer.PrintStmt(stmt))
	}
	return parts
}

// Sprint renders every statement of the program on its own line.
func Sprint(program *Program) string {
	printer := AstPrinter{}
	var b strings.Builder
	for _, stmt := range program.Statements {
		fmt.Fprintln(&b, printer.PrintStmt(stmt))
	}
	return b.String()
}
