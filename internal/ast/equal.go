package ast

// ExprEqual reports whether two expressions are structurally equal. Literals
// are compared with Value.Equal, node identity is never considered.
func ExprEqual(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *LiteralExpr:
		b, ok := b.(*LiteralExpr)
		return ok && a.Value.Equal(b.Value)
	case *VariableExpr:
		b, ok := b.(*VariableExpr)
		return ok && a.Name == b.Name
	case *BinaryExpr:
		b, ok := b.(*BinaryExpr)
		return ok && a.Op == b.Op && ExprEqual(a.Left, b.Left) && ExprEqual(a.Right, b.Right)
	case *UnaryExpr:
		b, ok := b.(*UnaryExpr)
		return ok && a.Op == b.Op && ExprEqual(a.Operand, b.Operand)
	case *GroupingExpr:
		b, ok := b.(*GroupingExpr)
		return ok && ExprEqual(a.Inner, b.Inner)
	case *AssignExpr:
		b, ok := b.(*AssignExpr)
		return ok && a.Name == b.Name && ExprEqual(a.Value, b.Value)
	case *CallExpr:
		b, ok := b.(*CallExpr)
		return ok && ExprEqual(a.Callee, b.Callee) && exprsEqual(a.Args, b.Args)
	case *GetExpr:
		b, ok := b.(*GetExpr)
		return ok && a.Name == b.Name && ExprEqual(a.Object, b.Object)
	case *SetExpr:
		b, ok := b.(*SetExpr)
		return ok && a.Name == b.Name && ExprEqual(a.Object, b.Object) && ExprEqual(a.Value, b.Value)
	case *ThisExpr:
		_, ok := b.(*ThisExpr)
		return ok
	case *SuperExpr:
		b, ok := b.(*SuperExpr)
		return ok && a.Method == b.Method
	}
	return false
}

// StmtEqual is the statement counterpart of ExprEqual.
func StmtEqual(a, b Stmt) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *ExpressionStmt:
		b, ok := b.(*ExpressionStmt)
		return ok && ExprEqual(a.Expression, b.Expression)
	case *PrintStmt:
		b, ok := b.(*PrintStmt)
		return ok && ExprEqual(a.Expression, b.Expression)
	case *VarStmt:
		b, ok := b.(*VarStmt)
		return ok && a.Name == b.Name && ExprEqual(a.Initializer, b.Initializer)
	case *BlockStmt:
		b, ok := b.(*BlockStmt)
		return ok && stmtsEqual(a.Statements, b.Statements)
	case *IfStmt:
		b, ok := b.(*IfStmt)
		return ok && ExprEqual(a.Condition, b.Condition) &&
			StmtEqual(a.ThenBranch, b.ThenBranch) && StmtEqual(a.ElseBranch, b.ElseBranch)
	case *WhileStmt:
		b, ok := b.(*WhileStmt)
		return ok && ExprEqual(a.Condition, b.Condition) && StmtEqual(a.Body, b.Body)
	case *ForStmt:
		b, ok := b.(*ForStmt)
		return ok && StmtEqual(a.Initializer, b.Initializer) && ExprEqual(a.Condition, b.Condition) &&
			ExprEqual(a.Increment, b.Increment) && StmtEqual(a.Body, b.Body)
	case *FunctionStmt:
		b, ok := b.(*FunctionStmt)
		return ok && functionsEqual(a, b)
	case *ReturnStmt:
		b, ok := b.(*ReturnStmt)
		return ok && ExprEqual(a.Value, b.Value)
	case *ClassStmt:
		b, ok := b.(*ClassStmt)
		if !ok || a.Name != b.Name || a.Superclass != b.Superclass || len(a.Methods) != len(b.Methods) {
			return false
		}
		for i := range a.Methods {
			if !functionsEqual(a.Methods[i], b.Methods[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func functionsEqual(a, b *FunctionStmt) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return stmtsEqual(a.Body, b.Body)
}

func exprsEqual(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ExprEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func stmtsEqual(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !StmtEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
