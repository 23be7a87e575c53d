// Package sema assigns a canonical type to every expression of a parsed
// program and checks the assignments for consistency.
//
// Checking is two passes per program. The first registers every top-level
// declaration's declared type into the program's global scope without
// looking at bodies, so declarations can refer to each other in any order.
// The second visits every declaration and expression, computing types,
// checking promotions, and rewriting implied annotations in place with the
// inferred type.
//
// A reported type error produces the distinguished error type, which
// compares equal to everything; downstream expressions built on it type
// silently instead of re-reporting.
package sema

import (
	"fmt"
	"slices"

	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/types"
)

// Check typechecks every program, reporting through sink. It returns true
// iff any error was reported. Programs are mutated: implied annotation
// nodes reachable from declarations get their inferred types written back.
func Check(programs []*ast.Program, sink diag.Sink) bool {
	c := &checker{sink: sink}

	for _, program := range programs {
		c.checkProgram(program)
	}

	return c.hadError
}

type checker struct {
	sink     diag.Sink
	hadError bool

	scope    *Scope
	fnReturn types.Data

	// names whose initializers are currently being checked, innermost
	// last; referring to one of them is an error
	initializing []string
}

func (c *checker) error(code diag.Code, span source.Info, note string) {
	c.hadError = true

	err := diag.New(code, span, diag.FromType)
	if note != "" {
		err.WithNote(note)
	}

	c.sink.Report(err)
}

func (c *checker) mismatch(span source.Info, expected, got types.Data) types.Data {
	c.error(diag.MismatchedTypes, span,
		fmt.Sprintf("Expected type '%s', got type '%s'.", expected, got))

	return types.ErrorType()
}

func (c *checker) checkProgram(program *ast.Program) {
	global := NewScope(nil)
	c.scope = global

	c.registerGlobalSymbols(program, global)

	for _, decl := range program.Decls {
		c.checkDecl(decl)
	}
}

// registerGlobalSymbols is pass one: record every top-level declaration's
// declared type without examining bodies or initializers. Exports are
// transparent.
func (c *checker) registerGlobalSymbols(program *ast.Program, global *Scope) {
	for _, decl := range program.Decls {
		c.registerDecl(decl, global)
	}
}

func (c *checker) registerDecl(decl ast.Decl, global *Scope) {
	switch d := decl.(type) {
	case *ast.ConstDecl:
		global.Insert(d.Name, Symbol{Type: d.TypeNode.Data})
	case *ast.StaticDecl:
		global.Insert(d.Name, Symbol{Type: d.TypeNode.Data})
	case *ast.FnDecl:
		params := make([]types.Data, len(d.Args))
		for i, arg := range d.Args {
			params[i] = arg.TypeNode.Data
		}

		global.Insert(d.Name, Symbol{
			Type: types.Void(),
			Fn:   &Signature{Params: params, Return: d.Return.Data},
		})
	case *ast.TypeAliasDecl:
		global.InsertAlias(d.Name, d.Aliased.Data)
	case *ast.ExportDecl:
		c.registerDecl(d.Exported, global)
	case *ast.ModuleDecl, *ast.ImportDecl, *ast.ArgumentDecl:
		// nothing to record
	}
}

// resolve chases user-defined bases through the alias table. Unmodified
// alias names resolve to their full aliased type; modified ones keep their
// modifier stack over the resolved base.
func (c *checker) resolve(data types.Data) types.Data {
	seen := 0

	for data.Is(types.BaseUserDefined) {
		aliased, ok := c.scope.LookupAlias(data.Name)
		if !ok {
			return data
		}

		// cycle guard; alias chains are short in practice
		if seen++; seen > 64 {
			return data
		}

		if len(data.Modifiers) > 0 {
			mods := slices.Clone(data.Modifiers)
			mods = append(mods, aliased.Modifiers...)
			aliased.Modifiers = mods
		}

		data = aliased
	}

	return data
}

func (c *checker) checkDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.ConstDecl:
		c.checkBinding(d.Name, d.TypeNode, d.Init)
	case *ast.StaticDecl:
		c.checkBinding(d.Name, d.TypeNode, d.Init)
	case *ast.FnDecl:
		c.checkFn(d)
	case *ast.ExportDecl:
		c.checkDecl(d.Exported)
	case *ast.ModuleDecl, *ast.ImportDecl, *ast.TypeAliasDecl, *ast.ArgumentDecl:
		// nothing to check
	}
}

// checkBinding handles const/static/let/mut. With an explicit annotation
// the initializer must promote to it; an implied annotation is rewritten in
// place with the initializer's type.
func (c *checker) checkBinding(name string, tyNode *ast.TypeExpr, init ast.Expr) {
	c.initializing = append(c.initializing, name)
	initType := c.checkExpr(init)
	c.initializing = c.initializing[:len(c.initializing)-1]

	bound := initType

	if tyNode.IsImplied() {
		tyNode.Data = initType
	} else {
		declared := c.resolve(tyNode.Data)
		bound = declared

		if !types.Promotable(initType, declared) {
			c.mismatch(init.Span(), declared, initType)
			bound = types.ErrorType()
		}
	}

	// For globals this overwrites the pass-one entry, which may have been
	// the implied marker; locals are simply introduced here.
	c.scope.Insert(name, Symbol{Type: bound})
}

func (c *checker) checkFn(fn *ast.FnDecl) {
	outer := c.scope
	c.scope = NewScope(outer)

	for _, arg := range fn.Args {
		c.scope.Insert(arg.Name, Symbol{Type: c.resolve(arg.TypeNode.Data)})
	}

	savedReturn := c.fnReturn
	c.fnReturn = c.resolve(fn.Return.Data)

	c.checkBlock(fn.Body)

	c.fnReturn = savedReturn
	c.scope = outer
}

// checkBlock types a block in its own child scope. A block's value is
// void: every expression statement is terminated, so nothing trails out.
func (c *checker) checkBlock(block *ast.Block) types.Data {
	outer := c.scope
	c.scope = NewScope(outer)

	for _, stmt := range block.Stmts {
		c.checkStmt(stmt)
	}

	c.scope = outer

	result := types.Void()
	block.SetType(result)

	return result
}

func (c *checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		c.checkBinding(s.Name, s.TypeNode, s.Init)
	case *ast.MutStmt:
		c.checkBinding(s.Name, s.TypeNode, s.Init)
	case *ast.RetStmt:
		c.checkRet(s)
	case *ast.LoopStmt:
		if s.Cond != nil {
			condType := c.checkExpr(s.Cond)
			if !condType.Equal(types.Bool()) {
				c.mismatch(s.Cond.Span(), types.Bool(), condType)
			}
		}

		c.checkExpr(s.Body)
	case *ast.ExprStmt:
		c.checkExpr(s.X)
	}
}

func (c *checker) checkRet(ret *ast.RetStmt) {
	if ret.Value == nil {
		if c.fnReturn.IsNot(types.BaseVoid) && !c.fnReturn.IsError() {
			c.mismatch(ret.Span(), c.fnReturn, types.Void())
		}

		return
	}

	valueType := c.checkExpr(ret.Value)
	if !types.Promotable(valueType, c.fnReturn) {
		c.mismatch(ret.Value.Span(), c.fnReturn, valueType)
	}
}
