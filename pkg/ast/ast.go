// Package ast defines the program tree the parser produces and the
// typechecker annotates.
//
// Nodes form four closed categories: declarations, statements, expressions
// and type expressions. Each category is a sealed interface; the concrete
// variants all live in this package and nothing outside it can add one, so a
// type switch over a category is exhaustive by construction. NodeKind is the
// parallel discriminator for code that wants to switch without naming the
// concrete types.
//
// Ownership is strictly a tree. Every non-leaf owns its children; nothing is
// shared and there are no back-edges.
package ast

import (
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/types"
)

// NodeKind discriminates every concrete node variant.
type NodeKind uint8

const (
	// Declarations.
	KindConstDecl NodeKind = iota
	KindStaticDecl
	KindFnDecl
	KindArgumentDecl
	KindModuleDecl
	KindImportDecl
	KindExportDecl
	KindTypeAliasDecl

	// Statements.
	KindLet
	KindMut
	KindRet
	KindLoop
	KindExpressionStatement

	// Expressions.
	KindIdentifier
	KindCharLit
	KindStringLit
	KindIntLit
	KindFloatLit
	KindBoolLit
	KindCall
	KindBinary
	KindUnary
	KindFieldAccess
	KindIndex
	KindIfElse
	KindBlock
	KindStructInit

	// Type expressions.
	KindType
)

// Node is anything that lives in the tree.
type Node interface {
	Kind() NodeKind
	Span() source.Info
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	isDecl()
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	isStmt()
}

// Expr is an expression. Every expression carries a slot for the canonical
// type the typechecker assigns to it.
type Expr interface {
	Node
	Type() types.Data
	SetType(d types.Data)
	isExpr()
}

// declNode is the embedded base for declarations.
type declNode struct {
	Info source.Info
}

func (d *declNode) Span() source.Info { return d.Info }
func (*declNode) isDecl()             {}

// stmtNode is the embedded base for statements.
type stmtNode struct {
	Info source.Info
}

func (s *stmtNode) Span() source.Info { return s.Info }
func (*stmtNode) isStmt()             {}

// exprNode is the embedded base for expressions. Ty starts as the implied
// marker and is overwritten during typechecking.
type exprNode struct {
	Info source.Info
	Ty   types.Data
}

func (e *exprNode) Span() source.Info    { return e.Info }
func (e *exprNode) Type() types.Data     { return e.Ty }
func (e *exprNode) SetType(d types.Data) { e.Ty = d }
func (*exprNode) isExpr()                {}
