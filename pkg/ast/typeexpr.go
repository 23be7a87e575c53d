package ast

import (
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/types"
)

// TypeExpr is the single type-expression node. It carries the canonical
// types.Data value for the written (or implied) type. The typechecker
// rewrites Data in place when it infers a type for an implied annotation;
// that is the only mutation any node sees after parsing.
type TypeExpr struct {
	Info source.Info
	Data types.Data
}

// NewTypeExpr creates a type expression carrying data.
func NewTypeExpr(info source.Info, data types.Data) *TypeExpr {
	return &TypeExpr{Info: info, Data: data}
}

// NewImplied creates the marker for an annotation the user left out. Info
// points at where the type would have been written.
func NewImplied(info source.Info) *TypeExpr {
	return NewTypeExpr(info, types.Implied())
}

// NewVoid creates the void type node, used for functions with no return
// annotation.
func NewVoid(info source.Info) *TypeExpr {
	return NewTypeExpr(info, types.Void())
}

func (*TypeExpr) Kind() NodeKind      { return KindType }
func (t *TypeExpr) Span() source.Info { return t.Info }

// IsImplied reports whether the annotation was left out and has not been
// inferred yet.
func (t *TypeExpr) IsImplied() bool {
	return t.Data.IsImplied()
}
