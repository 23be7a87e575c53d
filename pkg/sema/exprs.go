package sema

import (
	"fmt"
	"slices"

	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/token"
	"github.com/evanacox/cascade/pkg/types"
)

// comparisonOps yield bool regardless of the promoted operand type.
var comparisonOps = []token.Kind{
	token.SymEqualEqual,
	token.SymBangEqual,
	token.SymLt,
	token.SymLeq,
	token.SymGt,
	token.SymGeq,
}

// logicalOps also yield bool.
var logicalOps = []token.Kind{
	token.KwAnd,
	token.KwOr,
	token.KwXor,
}

// assignmentOps yield the assigned-to type.
var assignmentOps = []token.Kind{
	token.SymEqual,
	token.SymPlusEqual,
	token.SymHyphenEqual,
	token.SymStarEqual,
	token.SymForwardSlashEqual,
	token.SymPercentEqual,
	token.SymLtLtEqual,
	token.SymGtGtEqual,
	token.SymPoundEqual,
	token.SymPipeEqual,
	token.SymCaretEqual,
}

// checkExpr computes the type of e, records it on the node, and returns it.
func (c *checker) checkExpr(e ast.Expr) types.Data {
	result := c.typeOf(e)
	e.SetType(result)

	return result
}

func (c *checker) typeOf(e ast.Expr) types.Data {
	switch expr := e.(type) {
	case *ast.CharLit:
		return types.SignedInt(8)
	case *ast.IntLit:
		return types.SignedInt(32)
	case *ast.FloatLit:
		return types.Float(64)
	case *ast.BoolLit:
		return types.Bool()
	case *ast.StringLit:
		// slice-of-bytes placeholder pending a real slice design
		return types.UnsignedInt(8).WithPrefix(types.Array)

	case *ast.Identifier:
		return c.typeOfIdentifier(expr)
	case *ast.Unary:
		return c.typeOfUnary(expr)
	case *ast.Binary:
		return c.typeOfBinary(expr)
	case *ast.Call:
		return c.typeOfCall(expr)
	case *ast.Index:
		return c.typeOfIndex(expr)
	case *ast.FieldAccess:
		// struct layouts are opaque to the front-end; the access is
		// walked for errors but produces no usable value
		c.checkExpr(expr.Object)
		return types.Void()
	case *ast.IfElse:
		return c.typeOfIfElse(expr)
	case *ast.Block:
		return c.checkBlock(expr)
	case *ast.StructInit:
		for _, field := range expr.Fields {
			c.checkExpr(field.Value)
		}

		return c.resolve(types.UserDefined(expr.Name))
	}

	return types.ErrorType()
}

func (c *checker) typeOfIdentifier(id *ast.Identifier) types.Data {
	if slices.Contains(c.initializing, id.Name) {
		c.error(diag.UsingVariableInInitializer, id.Span(), "")
		return types.ErrorType()
	}

	sym, ok := c.scope.Lookup(id.Name)
	if !ok {
		c.error(diag.UnknownIdentifier, id.Span(), "")
		return types.ErrorType()
	}

	return c.resolve(sym.Type)
}

func (c *checker) typeOfUnary(unary *ast.Unary) types.Data {
	operand := c.checkExpr(unary.Operand)

	// the error type never carries modifiers
	if operand.IsError() && unary.Op != token.SymStar {
		return operand
	}

	switch unary.Op {
	case token.SymAt:
		// address-of through @ yields a mutable pointer
		return operand.WithPrefix(types.MutPtr)

	case token.SymPound:
		return operand.WithPrefix(types.MutRef)

	case token.SymStar:
		if operand.IsError() {
			return operand
		}

		if !operand.IsPointer() {
			c.error(diag.DereferenceRequiresPointerType, unary.Span(),
				fmt.Sprintf("Type '%s' cannot be dereferenced.", operand))
			return types.ErrorType()
		}

		return operand.StripOutermost()

	case token.SymHyphen, token.SymPlus, token.SymTilde, token.KwNot, token.KwClone:
		return operand
	}

	return types.ErrorType()
}

func (c *checker) typeOfBinary(binary *ast.Binary) types.Data {
	lhs := c.checkExpr(binary.LHS)
	rhs := c.checkExpr(binary.RHS)

	if slices.Contains(assignmentOps, binary.Op) {
		if !types.Promotable(rhs, lhs) {
			return c.mismatch(binary.RHS.Span(), lhs, rhs)
		}

		return lhs
	}

	common, ok := types.BinaryConvert(lhs, rhs)
	if !ok {
		return c.mismatch(binary.Span(), lhs, rhs)
	}

	if slices.Contains(comparisonOps, binary.Op) || slices.Contains(logicalOps, binary.Op) {
		return types.Bool()
	}

	return common
}

func (c *checker) typeOfCall(call *ast.Call) types.Data {
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok {
		c.checkExpr(call.Callee)
		for _, arg := range call.Args {
			c.checkExpr(arg)
		}

		c.error(diag.MismatchedTypes, call.Span(), "This expression is not callable.")
		return types.ErrorType()
	}

	sym, found := c.scope.Lookup(callee.Name)
	if !found {
		c.error(diag.UnknownIdentifier, callee.Span(), "")
		callee.SetType(types.ErrorType())
		return types.ErrorType()
	}

	callee.SetType(sym.Type)

	if sym.Fn == nil {
		c.error(diag.MismatchedTypes, call.Span(),
			fmt.Sprintf("'%s' has type '%s' and is not a function.", callee.Name, sym.Type))
		return types.ErrorType()
	}

	sig := sym.Fn

	if len(call.Args) != len(sig.Params) {
		c.error(diag.MismatchedTypes, call.Span(),
			fmt.Sprintf("'%s' takes %d argument(s), but %d were given.",
				callee.Name, len(sig.Params), len(call.Args)))
	}

	for i, arg := range call.Args {
		argType := c.checkExpr(arg)

		if i >= len(sig.Params) {
			continue
		}

		param := c.resolve(sig.Params[i])
		if !types.Promotable(argType, param) {
			c.mismatch(arg.Span(), param, argType)
		}
	}

	return c.resolve(sig.Return)
}

func (c *checker) typeOfIndex(index *ast.Index) types.Data {
	object := c.checkExpr(index.Object)
	idx := c.checkExpr(index.Idx)

	if !idx.IsError() && idx.IsNot(types.BaseSignedInt) && idx.IsNot(types.BaseUnsignedInt) {
		c.mismatch(index.Idx.Span(), types.SignedInt(32), idx)
	}

	if object.IsError() {
		return object
	}

	if len(object.Modifiers) == 0 || object.Modifiers[0] != types.Array {
		c.error(diag.MismatchedTypes, index.Span(),
			fmt.Sprintf("Type '%s' cannot be indexed.", object))
		return types.ErrorType()
	}

	return object.StripOutermost()
}

func (c *checker) typeOfIfElse(ifelse *ast.IfElse) types.Data {
	cond := c.checkExpr(ifelse.Cond)
	if !cond.Equal(types.Bool()) {
		c.mismatch(ifelse.Cond.Span(), types.Bool(), cond)
	}

	thenType := c.checkExpr(ifelse.Then)

	if ifelse.Else == nil {
		// block form without else; both arms are void by construction
		return thenType
	}

	elseType := c.checkExpr(ifelse.Else)

	if !thenType.Equal(elseType) {
		return c.mismatch(ifelse.Else.Span(), thenType, elseType)
	}

	return thenType
}
