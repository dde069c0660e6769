// Package ast defines the syntax tree produced by the Lox front-end.
//
// A Program is an ordered list of statements. Every node is immutable once
// built and owned by its parent, there is no sharing between subtrees.
//
// The Expr and Stmt variants (expr.go, stmt.go) are generated, edit the type
// descriptions in internal/cmd/ast_codegen instead.
package ast

//go:generate go run ../cmd/ast_codegen .
