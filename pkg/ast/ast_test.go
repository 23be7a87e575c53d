package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/token"
	"github.com/evanacox/cascade/pkg/types"
)

func span(pos, length int) source.Info {
	return source.New(pos, 1, pos+1, length, "a.csc")
}

// const x = 5; in tree form
func constFive() *ast.ConstDecl {
	return ast.NewConstDecl(
		span(0, 12),
		"x",
		ast.NewImplied(span(6, 1)),
		ast.NewIntLit(span(10, 1), 5),
	)
}

func TestKinds(t *testing.T) {
	tests := []struct {
		node ast.Node
		kind ast.NodeKind
	}{
		{constFive(), ast.KindConstDecl},
		{ast.NewModuleDecl(span(0, 9), "m"), ast.KindModuleDecl},
		{ast.NewRetStmt(span(0, 4), nil), ast.KindRet},
		{ast.NewLoopStmt(span(0, 8), nil, ast.NewBlock(span(5, 2), nil)), ast.KindLoop},
		{ast.NewIdentifier(span(0, 1), "x"), ast.KindIdentifier},
		{ast.NewIntLit(span(0, 1), 5), ast.KindIntLit},
		{ast.NewImplied(span(0, 1)), ast.KindType},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.node.Kind())
	}
}

func TestLoopKindDistinctFromRet(t *testing.T) {
	loop := ast.NewLoopStmt(span(0, 8), nil, ast.NewBlock(span(5, 2), nil))
	ret := ast.NewRetStmt(span(0, 4), nil)

	assert.NotEqual(t, ret.Kind(), loop.Kind())
}

func TestWalk_VisitsEveryNode(t *testing.T) {
	// fn f(a: i32): i32 { ret a + 1; }
	arg := ast.NewArgumentDecl(span(5, 6), "a", ast.NewTypeExpr(span(8, 3), types.SignedInt(32)))
	sum := ast.NewBinary(span(24, 5), token.SymPlus,
		ast.NewIdentifier(span(24, 1), "a"),
		ast.NewIntLit(span(28, 1), 1))
	body := ast.NewBlock(span(18, 14), []ast.Stmt{ast.NewRetStmt(span(20, 10), sum)})
	fn := ast.NewFnDecl(span(0, 32), "f",
		[]*ast.ArgumentDecl{arg},
		ast.NewTypeExpr(span(14, 3), types.SignedInt(32)),
		body)

	var kinds []ast.NodeKind
	ast.Walk(fn, func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	assert.Equal(t, []ast.NodeKind{
		ast.KindFnDecl,
		ast.KindArgumentDecl, ast.KindType,
		ast.KindType,
		ast.KindBlock, ast.KindRet, ast.KindBinary, ast.KindIdentifier, ast.KindIntLit,
	}, kinds)
}

func TestWalk_PruneSubtree(t *testing.T) {
	decl := constFive()

	var count int
	ast.Walk(decl, func(n ast.Node) bool {
		count++
		return n.Kind() != ast.KindConstDecl
	})

	assert.Equal(t, 1, count)
}

func TestWalkExprs(t *testing.T) {
	decl := constFive()

	var exprs []ast.Expr
	ast.WalkExprs(decl, func(e ast.Expr) {
		exprs = append(exprs, e)
	})

	require.Len(t, exprs, 1)
	assert.Equal(t, ast.KindIntLit, exprs[0].Kind())
}

func TestExprTypeSlot(t *testing.T) {
	lit := ast.NewIntLit(span(0, 1), 5)

	assert.True(t, lit.Type().IsImplied())

	lit.SetType(types.SignedInt(32))
	assert.True(t, lit.Type().Equal(types.SignedInt(32)))
}

func TestProgram_Module(t *testing.T) {
	p := ast.NewProgram("a.csc")
	_, ok := p.Module()
	assert.False(t, ok)

	p.AddDecl(ast.NewModuleDecl(span(0, 9), "m"))
	p.AddDecl(constFive())

	mod, ok := p.Module()
	require.True(t, ok)
	assert.Equal(t, "m", mod.Name)
	assert.Len(t, p.Decls, 2)
}

func TestDump(t *testing.T) {
	p := ast.NewProgram("a.csc")
	p.AddDecl(ast.NewModuleDecl(span(0, 9), "m"))
	p.AddDecl(constFive())

	out := ast.Dump(p)

	assert.Contains(t, out, `(program "a.csc"`)
	assert.Contains(t, out, "(module m)")
	assert.Contains(t, out, "(const x <implied> 5)")
}
