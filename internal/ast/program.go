package ast

import (
	"fmt"
	"strings"
)

// Program is the result of a successful parse. The order of Statements is
// the textual order of the source.
type Program struct {
	Statements []Stmt `json:"statements"`
}

func NewProgram(statements []Stmt) *Program {
	if statements == nil {
		statements = make([]Stmt, 0)
	}
	return &Program{statements}
}

func (p *Program) Len() int {
	return len(p.Statements)
}

func (p *Program) IsEmpty() bool {
	return len(p.Statements) == 0
}

// Equal reports whether both programs contain structurally equal statements
// in the same order.
func (p *Program) Equal(other *Program) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.Statements) != len(other.Statements) {
		return false
	}
	for i := range p.Statements {
		if !StmtEqual(p.Statements[i], other.Statements[i]) {
			return false
		}
	}
	return true
}

func (p *Program) String() string {
	var b strings.Builder
	printer := AstPrinter{}
	fmt.Fprintf(&b, "Program with %d statements:\n", len(p.Statements))
	for i, stmt := range p.Statements {
		fmt.Fprintf(&b, "  %d: %s\n", i+1, printer.PrintStmt(stmt))
	}
	return b.String()
}
