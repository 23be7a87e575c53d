package ast

import "github.com/evanacox/cascade/pkg/source"

// LetStmt is `let name (: type)? = init ;`, an immutable binding.
type LetStmt struct {
	stmtNode
	Name     string
	TypeNode *TypeExpr
	Init     Expr
}

// MutStmt is `mut name (: type)? = init ;`, a mutable binding.
type MutStmt struct {
	stmtNode
	Name     string
	TypeNode *TypeExpr
	Init     Expr
}

// RetStmt is `ret expr? ;`.
type RetStmt struct {
	stmtNode
	Value Expr // nil for a bare `ret;`
}

// LoopStmt covers `loop body`, `while cond body` and `for cond body`. Cond
// is nil for the unconditional form.
type LoopStmt struct {
	stmtNode
	Cond Expr
	Body Expr
}

// ExprStmt is an expression evaluated for effect, `expr ;`.
type ExprStmt struct {
	stmtNode
	X Expr
}

func (*LetStmt) Kind() NodeKind  { return KindLet }
func (*MutStmt) Kind() NodeKind  { return KindMut }
func (*RetStmt) Kind() NodeKind  { return KindRet }
func (*LoopStmt) Kind() NodeKind { return KindLoop }
func (*ExprStmt) Kind() NodeKind { return KindExpressionStatement }

// NewLetStmt creates a let statement.
func NewLetStmt(info source.Info, name string, ty *TypeExpr, init Expr) *LetStmt {
	return &LetStmt{stmtNode: stmtNode{Info: info}, Name: name, TypeNode: ty, Init: init}
}

// NewMutStmt creates a mut statement.
func NewMutStmt(info source.Info, name string, ty *TypeExpr, init Expr) *MutStmt {
	return &MutStmt{stmtNode: stmtNode{Info: info}, Name: name, TypeNode: ty, Init: init}
}

// NewRetStmt creates a ret statement.
func NewRetStmt(info source.Info, value Expr) *RetStmt {
	return &RetStmt{stmtNode: stmtNode{Info: info}, Value: value}
}

// NewLoopStmt creates a loop statement.
func NewLoopStmt(info source.Info, cond, body Expr) *LoopStmt {
	return &LoopStmt{stmtNode: stmtNode{Info: info}, Cond: cond, Body: body}
}

// NewExprStmt creates an expression statement.
func NewExprStmt(info source.Info, x Expr) *ExprStmt {
	return &ExprStmt{stmtNode: stmtNode{Info: info}, X: x}
}
