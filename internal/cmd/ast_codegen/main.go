package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const header = "// Code generated by ast_codegen. DO NOT EDIT.\n\n"

// Only the first six expression kinds and the first three statement kinds are
// produced by the parser, the rest are declared so that downstream tools can
// share one tree definition.
var expressionTypes = []string{
	"Literal: Value Value",
	"Variable: Name string",
	"Binary: Left Expr, Op BinaryOp, Right Expr",
	"Unary: Op UnaryOp, Operand Expr",
	"Grouping: Inner Expr",
	"Assign: Name string, Value Expr",
	"Call: Callee Expr, Args []Expr",
	"Get: Object Expr, Name string",
	"Set: Object Expr, Name string, Value Expr",
	"This:",
	"Super: Method string",
}

var statementTypes = []string{
	"Expression: Expression Expr",
	"Print: Expression Expr",
	"Var: Name string, Initializer Expr",
	"Block: Statements []Stmt",
	"If: Condition Expr, ThenBranch Stmt, ElseBranch Stmt",
	"While: Condition Expr, Body Stmt",
	"For: Initializer Stmt, Condition Expr, Increment Expr, Body Stmt",
	"Function: Name string, Params []string, Body []Stmt",
	"Return: Value Expr",
	"Class: Name string, Superclass string, Methods []*FunctionStmt",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir := os.Args[1]
	if err := writeAst(outputDir, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeAst(outputDir, "Stmt", statementTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeAst(outputDir string, baseName string, types []string) error {
	packageName := filepath.Base(outputDir)
	if abs, err := filepath.Abs(outputDir); err == nil {
		packageName = filepath.Base(abs)
	}

	var buf bytes.Buffer
	if err := defineAst(&buf, packageName, baseName, types); err != nil {
		return err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting %s: %w", baseName, err)
	}

	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineAst(writer io.Writer, packageName string, baseName string, types []string) error {
	fmt.Fprint(writer, header)
	fmt.Fprintf(writer, "package %s\n\n", packageName)

	fmt.Fprintf(writer, "type %s interface {\n", baseName)
	fmt.Fprintf(writer, "\tAccept(visitor %sVisitor) interface{}\n", baseName)
	fmt.Fprintf(writer, "}\n\n")

	defineVisitor(writer, baseName, types)

	for _, t := range types {
		typeName, fields, err := splitType(t)
		if err != nil {
			return err
		}
		defineType(writer, baseName, typeName, fields)
	}
	return nil
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName, _, _ := splitType(t)
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) interface{}\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

type field struct {
	name string
	typ  string
}

func splitType(t string) (string, []field, error) {
	typeName, fieldList, ok := strings.Cut(t, ":")
	if !ok {
		return "", nil, fmt.Errorf("malformed type description %q", t)
	}
	var fields []field
	for _, f := range strings.Split(fieldList, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		name, typ, ok := strings.Cut(f, " ")
		if !ok {
			return "", nil, fmt.Errorf("malformed field %q in %q", f, t)
		}
		fields = append(fields, field{name, strings.TrimSpace(typ)})
	}
	return strings.TrimSpace(typeName), fields, nil
}

func defineType(writer io.Writer, baseName string, typeName string, fields []field) {
	recv := strings.ToLower(baseName)
	structName := typeName + baseName

	// Struct definition
	if len(fields) == 0 {
		fmt.Fprintf(writer, "type %s struct{}\n\n", structName)
	} else {
		fmt.Fprintf(writer, "type %s struct {\n", structName)
		for _, f := range fields {
			fmt.Fprintf(writer, "\t%s %s\n", f.name, f.typ)
		}
		fmt.Fprintf(writer, "}\n\n")
	}

	// Constructor
	var params, args []string
	for _, f := range fields {
		params = append(params, lowerFirst(f.name)+" "+f.typ)
		args = append(args, lowerFirst(f.name))
	}
	fmt.Fprintf(
		writer,
		"func New%s(%s) *%s {\n\treturn &%s{%s}\n}\n\n",
		structName,
		strings.Join(params, ", "),
		structName,
		structName,
		strings.Join(args, ", "),
	)

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s) Accept(visitor %sVisitor) interface{} {\n\treturn visitor.Visit%s(%s)\n}\n\n",
		recv, structName, baseName, structName, recv,
	)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
