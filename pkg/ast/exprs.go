package ast

import (
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/token"
)

// Identifier is a bare name.
type Identifier struct {
	exprNode
	Name string
}

// CharLit is a character literal. Value is the single byte it denotes.
type CharLit struct {
	exprNode
	Value byte
}

// StringLit is a string literal. Value has the delimiters stripped and the
// delimiter escape resolved.
type StringLit struct {
	exprNode
	Value string
}

// IntLit is an integer literal.
type IntLit struct {
	exprNode
	Value int64
}

// FloatLit is a float literal.
type FloatLit struct {
	exprNode
	Value float64
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	exprNode
	Value bool
}

// Call is `callee(args...)`.
type Call struct {
	exprNode
	Callee Expr
	Args   []Expr
}

// Binary applies an infix operator. Op is the operator's token kind.
type Binary struct {
	exprNode
	Op  token.Kind
	LHS Expr
	RHS Expr
}

// Unary applies a prefix operator to its operand.
type Unary struct {
	exprNode
	Op      token.Kind
	Operand Expr
}

// FieldAccess is `object.field`.
type FieldAccess struct {
	exprNode
	Object Expr
	Field  string
}

// Index is `object[index]`.
type Index struct {
	exprNode
	Object Expr
	Idx    Expr
}

// IfElse is both forms of `if`. In the `then` form both arms are arbitrary
// expressions and Else is always present; in the block form both arms are
// blocks and Else may be nil.
type IfElse struct {
	exprNode
	Cond     Expr
	Then     Expr
	Else     Expr // nil when the block form has no else
	ThenForm bool
}

// Block is `{ statement* }`. A block is itself an expression.
type Block struct {
	exprNode
	Stmts []Stmt
}

// FieldInit is one `name: value` pair in a struct initializer.
type FieldInit struct {
	Info  source.Info
	Name  string
	Value Expr
}

// StructInit is `Name { field: value, ... }`.
type StructInit struct {
	exprNode
	Name   string
	Fields []FieldInit
}

func (*Identifier) Kind() NodeKind  { return KindIdentifier }
func (*CharLit) Kind() NodeKind     { return KindCharLit }
func (*StringLit) Kind() NodeKind   { return KindStringLit }
func (*IntLit) Kind() NodeKind      { return KindIntLit }
func (*FloatLit) Kind() NodeKind    { return KindFloatLit }
func (*BoolLit) Kind() NodeKind     { return KindBoolLit }
func (*Call) Kind() NodeKind        { return KindCall }
func (*Binary) Kind() NodeKind      { return KindBinary }
func (*Unary) Kind() NodeKind       { return KindUnary }
func (*FieldAccess) Kind() NodeKind { return KindFieldAccess }
func (*Index) Kind() NodeKind       { return KindIndex }
func (*IfElse) Kind() NodeKind      { return KindIfElse }
func (*Block) Kind() NodeKind       { return KindBlock }
func (*StructInit) Kind() NodeKind  { return KindStructInit }

// NewIdentifier creates an identifier expression.
func NewIdentifier(info source.Info, name string) *Identifier {
	return &Identifier{exprNode: exprNode{Info: info}, Name: name}
}

// NewCharLit creates a char literal.
func NewCharLit(info source.Info, value byte) *CharLit {
	return &CharLit{exprNode: exprNode{Info: info}, Value: value}
}

// NewStringLit creates a string literal.
func NewStringLit(info source.Info, value string) *StringLit {
	return &StringLit{exprNode: exprNode{Info: info}, Value: value}
}

// NewIntLit creates an integer literal.
func NewIntLit(info source.Info, value int64) *IntLit {
	return &IntLit{exprNode: exprNode{Info: info}, Value: value}
}

// NewFloatLit creates a float literal.
func NewFloatLit(info source.Info, value float64) *FloatLit {
	return &FloatLit{exprNode: exprNode{Info: info}, Value: value}
}

// NewBoolLit creates a bool literal.
func NewBoolLit(info source.Info, value bool) *BoolLit {
	return &BoolLit{exprNode: exprNode{Info: info}, Value: value}
}

// NewCall creates a call expression.
func NewCall(info source.Info, callee Expr, args []Expr) *Call {
	return &Call{exprNode: exprNode{Info: info}, Callee: callee, Args: args}
}

// NewBinary creates a binary expression.
func NewBinary(info source.Info, op token.Kind, lhs, rhs Expr) *Binary {
	return &Binary{exprNode: exprNode{Info: info}, Op: op, LHS: lhs, RHS: rhs}
}

// NewUnary creates a unary expression.
func NewUnary(info source.Info, op token.Kind, operand Expr) *Unary {
	return &Unary{exprNode: exprNode{Info: info}, Op: op, Operand: operand}
}

// NewFieldAccess creates a field access.
func NewFieldAccess(info source.Info, object Expr, field string) *FieldAccess {
	return &FieldAccess{exprNode: exprNode{Info: info}, Object: object, Field: field}
}

// NewIndex creates an index expression.
func NewIndex(info source.Info, object, idx Expr) *Index {
	return &Index{exprNode: exprNode{Info: info}, Object: object, Idx: idx}
}

// NewIfElse creates an if expression.
func NewIfElse(info source.Info, cond, then, els Expr, thenForm bool) *IfElse {
	return &IfElse{exprNode: exprNode{Info: info}, Cond: cond, Then: then, Else: els, ThenForm: thenForm}
}

// NewBlock creates a block expression.
func NewBlock(info source.Info, stmts []Stmt) *Block {
	return &Block{exprNode: exprNode{Info: info}, Stmts: stmts}
}

// NewStructInit creates a struct initializer.
func NewStructInit(info source.Info, name string, fields []FieldInit) *StructInit {
	return &StructInit{exprNode: exprNode{Info: info}, Name: name, Fields: fields}
}
