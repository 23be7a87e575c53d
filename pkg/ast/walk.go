package ast

// Walk visits n and its descendants in pre-order. If fn returns false for a
// node, its children are skipped. The switch below is the one place that
// enumerates every concrete variant. It has no default case and the compiler
// does not check it for exhaustiveness: a variant missing from it is visited
// itself, but its children are not.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch node := n.(type) {
	case *ConstDecl:
		Walk(node.TypeNode, fn)
		Walk(node.Init, fn)
	case *StaticDecl:
		Walk(node.TypeNode, fn)
		Walk(node.Init, fn)
	case *ArgumentDecl:
		Walk(node.TypeNode, fn)
	case *FnDecl:
		for _, arg := range node.Args {
			Walk(arg, fn)
		}
		Walk(node.Return, fn)
		Walk(node.Body, fn)
	case *ModuleDecl, *ImportDecl:
		// leaves
	case *ExportDecl:
		Walk(node.Exported, fn)
	case *TypeAliasDecl:
		Walk(node.Aliased, fn)

	case *LetStmt:
		Walk(node.TypeNode, fn)
		Walk(node.Init, fn)
	case *MutStmt:
		Walk(node.TypeNode, fn)
		Walk(node.Init, fn)
	case *RetStmt:
		if node.Value != nil {
			Walk(node.Value, fn)
		}
	case *LoopStmt:
		if node.Cond != nil {
			Walk(node.Cond, fn)
		}
		Walk(node.Body, fn)
	case *ExprStmt:
		Walk(node.X, fn)

	case *Identifier, *CharLit, *StringLit, *IntLit, *FloatLit, *BoolLit:
		// leaves
	case *Call:
		Walk(node.Callee, fn)
		for _, arg := range node.Args {
			Walk(arg, fn)
		}
	case *Binary:
		Walk(node.LHS, fn)
		Walk(node.RHS, fn)
	case *Unary:
		Walk(node.Operand, fn)
	case *FieldAccess:
		Walk(node.Object, fn)
	case *Index:
		Walk(node.Object, fn)
		Walk(node.Idx, fn)
	case *IfElse:
		Walk(node.Cond, fn)
		Walk(node.Then, fn)
		if node.Else != nil {
			Walk(node.Else, fn)
		}
	case *Block:
		for _, stmt := range node.Stmts {
			Walk(stmt, fn)
		}
	case *StructInit:
		for _, field := range node.Fields {
			Walk(field.Value, fn)
		}

	case *TypeExpr:
		// leaf
	}
}

// WalkProgram walks every declaration of p.
func WalkProgram(p *Program, fn func(Node) bool) {
	for _, d := range p.Decls {
		Walk(d, fn)
	}
}

// WalkExprs visits every expression reachable from n.
func WalkExprs(n Node, fn func(Expr)) {
	Walk(n, func(node Node) bool {
		if expr, ok := node.(Expr); ok {
			fn(expr)
		}

		return true
	})
}
