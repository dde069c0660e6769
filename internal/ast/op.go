package ast

import (
	"fmt"
	"strconv"
)

type BinaryOp uint8

const (
	// Arithmetic
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide

	// Comparison
	Greater
	GreaterEqual
	Less
	LessEqual
	Equal
	NotEqual

	// Logical
	And
	Or
)

var binaryOps = [...]struct{ name, symbol string }{
	Add:          {"Add", "+"},
	Subtract:     {"Subtract", "-"},
	Multiply:     {"Multiply", "*"},
	Divide:       {"Divide", "/"},
	Greater:      {"Greater", ">"},
	GreaterEqual: {"GreaterEqual", ">="},
	Less:         {"Less", "<"},
	LessEqual:    {"LessEqual", "<="},
	Equal:        {"Equal", "=="},
	NotEqual:     {"NotEqual", "!="},
	And:          {"And", "and"},
	Or:           {"Or", "or"},
}

// String returns the operator as written in source.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOps) {
		return binaryOps[op].symbol
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Name returns the variant name, e.g. "GreaterEqual".
func (op BinaryOp) Name() string {
	if int(op) < len(binaryOps) {
		return binaryOps[op].name
	}
	return op.String()
}

func (op BinaryOp) MarshalText() ([]byte, error) {
	if int(op) >= len(binaryOps) {
		return nil, fmt.Errorf("invalid binary operator %d", op)
	}
	return []byte(op.Name()), nil
}

type UnaryOp uint8

const (
	Minus UnaryOp = iota
	Not
)

func (op UnaryOp) String() string {
	switch op {
	case Minus:
		return "-"
	case Not:
		return "!"
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

func (op UnaryOp) Name() string {
	switch op {
	case Minus:
		return "Minus"
	case Not:
		return "Not"
	}
	return op.String()
}

func (op UnaryOp) MarshalText() ([]byte, error) {
	if op > Not {
		return nil, fmt.Errorf("invalid unary operator %d", op)
	}
	return []byte(op.Name()), nil
}
