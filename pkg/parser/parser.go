// Package parser builds the program tree from a token stream.
//
// The grammar is LL, parsed by recursive descent with one method per
// precedence level. Errors are reported to the sink and recovered with
// panic-mode: the failing production panics an internal sentinel that the
// declaration and statement loops catch, skip to a synchronization point,
// and keep parsing. The sentinel never escapes Parse, so the caller always
// gets a (possibly incomplete) program back.
package parser

import (
	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/token"
)

// bail is the recovery sentinel. It carries nothing: the error is already
// in the sink by the time it is thrown.
type bail struct{}

// syncKinds are the tokens panic-mode recovery stops in front of. A
// semicolon is the one sync token that gets consumed, since it ends the
// broken statement rather than starting the next one.
var syncKinds = []token.Kind{
	token.KwIf,
	token.KwElse,
	token.KwThen,
	token.KwFn,
	token.KwLet,
	token.KwMut,
	token.KwRet,
	token.KwImport,
	token.KwExport,
	token.KwModule,
	token.KwAs,
	token.KwPub,
	token.KwAssert,
	token.SymCloseBrace,
	token.SymCloseParen,
	token.SymCloseBracket,
}

// Parse consumes tokens and produces the program tree for path, reporting
// errors through sink. It never aborts early: on malformed input the
// returned program simply contains fewer declarations than the source
// intended.
func Parse(toks []token.Token, path string, sink diag.Sink) *ast.Program {
	p := &parser{toks: toks, path: path, sink: sink}
	program := ast.NewProgram(path)

	for !p.atEnd() {
		if decl := p.declaration(); decl != nil {
			program.AddDecl(decl)
		}
	}

	return program
}

type parser struct {
	toks []token.Token
	pos  int
	path string
	sink diag.Sink

	sawModule bool
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.toks)
}

// endInfo is the span errors point at when the input ran out.
func (p *parser) endInfo() source.Info {
	if len(p.toks) == 0 {
		return source.New(0, 1, 1, 1, p.path)
	}

	last := p.toks[len(p.toks)-1].Info
	return source.New(last.End(), last.Line, last.Column+last.Length, 1, p.path)
}

// current returns the token about to be consumed. At the end of input it
// reports unexpected_end_of_input and bails.
func (p *parser) current() token.Token {
	if p.atEnd() {
		p.report(diag.UnexpectedEndOfInput, p.endInfo(), "")
		panic(bail{})
	}

	return p.toks[p.pos]
}

func (p *parser) previous() token.Token {
	return p.toks[p.pos-1]
}

func (p *parser) consume() token.Token {
	tok := p.current()
	p.pos++
	return tok
}

// check reports whether the next token has the given kind, without
// consuming and without bailing at the end of input.
func (p *parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.toks[p.pos].Kind == kind
}

func (p *parser) checkAhead(offset int, kind token.Kind) bool {
	return p.pos+offset < len(p.toks) && p.toks[p.pos+offset].Kind == kind
}

// match consumes the next token if it has any of the given kinds.
func (p *parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.pos++
			return true
		}
	}

	return false
}

// expect consumes a token of the given kind or reports code and bails.
func (p *parser) expect(kind token.Kind, code diag.Code) token.Token {
	if p.check(kind) {
		return p.consume()
	}

	p.errorAtCurrent(code, "")
	panic(bail{})
}

func (p *parser) report(code diag.Code, span source.Info, note string) {
	err := diag.New(code, span, diag.FromToken)
	if note != "" {
		err.WithNote(note)
	}

	p.sink.Report(err)
}

// errorAtCurrent reports code pointing at the next token, or at the end of
// input when there is none. It does not bail.
func (p *parser) errorAtCurrent(code diag.Code, note string) {
	span := p.endInfo()
	if !p.atEnd() {
		span = p.toks[p.pos].Info
	}

	p.report(code, span, note)
}

// synchronize skips tokens until a statement or declaration boundary: a
// semicolon (consumed) or a sync keyword/closer (left for the caller).
func (p *parser) synchronize() {
	for !p.atEnd() {
		if p.check(token.SymSemicolon) {
			p.pos++
			return
		}

		if p.toks[p.pos].IsOneOf(syncKinds...) {
			return
		}

		p.pos++
	}
}

// declaration parses one top-level declaration, recovering to the next
// boundary if it fails. A nil result means the tokens were skipped.
func (p *parser) declaration() (decl ast.Decl) {
	start := p.pos

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}

			p.recoverFrom(start)
			decl = nil
		}
	}()

	return p.parseDecl()
}

// recoverFrom synchronizes and guarantees progress: when the error hit the
// very token the production started on (a sync token that cannot actually
// start anything here), that token is skipped so recovery cannot loop.
func (p *parser) recoverFrom(start int) {
	p.synchronize()

	if p.pos == start && !p.atEnd() {
		p.pos++
	}
}

func (p *parser) parseDecl() ast.Decl {
	switch p.current().Kind {
	case token.KwModule:
		return p.moduleDecl()
	case token.KwImport:
		return p.importDecl()
	case token.KwExport:
		return p.exportDecl()
	case token.KwConst:
		return p.constDecl()
	case token.KwStatic:
		return p.staticDecl()
	case token.KwType:
		return p.typeAliasDecl()
	case token.KwFn:
		return p.fnDecl()
	default:
		p.errorAtCurrent(diag.ExpectedDeclaration, "")
		panic(bail{})
	}
}

func (p *parser) moduleDecl() ast.Decl {
	kw := p.consume()
	name := p.expect(token.Identifier, diag.ExpectedIdentifier)
	semi := p.expect(token.SymSemicolon, diag.ExpectedSemi)

	if p.sawModule {
		p.report(diag.DuplicateModule, kw.Info.Combine(semi.Info), "")
		return nil
	}

	p.sawModule = true

	return ast.NewModuleDecl(kw.Info.Combine(semi.Info), name.Raw)
}

func (p *parser) importDecl() ast.Decl {
	kw := p.consume()
	name := p.dottedName()

	var items []string
	if p.match(token.KwFrom) {
		p.expect(token.SymOpenBrace, diag.ExpectedOpeningBrace)
		items = append(items, p.expect(token.Identifier, diag.ExpectedIdentifier).Raw)

		for p.match(token.SymComma) {
			items = append(items, p.expect(token.Identifier, diag.ExpectedIdentifier).Raw)
		}

		p.expect(token.SymCloseBrace, diag.UnmatchedBrace)
	}

	alias := ""
	if p.match(token.KwAs) {
		alias = p.expect(token.Identifier, diag.ExpectedIdentifier).Raw
	}

	semi := p.expect(token.SymSemicolon, diag.ExpectedSemi)

	return ast.NewImportDecl(kw.Info.Combine(semi.Info), name, items, alias)
}

func (p *parser) dottedName() string {
	name := p.expect(token.Identifier, diag.ExpectedIdentifier).Raw

	for p.match(token.SymDot) {
		name += "." + p.expect(token.Identifier, diag.ExpectedIdentifier).Raw
	}

	return name
}

func (p *parser) exportDecl() ast.Decl {
	kw := p.consume()

	if p.check(token.KwExport) {
		p.errorAtCurrent(diag.CannotExportExport, "")
		panic(bail{})
	}

	inner := p.parseDecl()
	if inner == nil {
		return nil
	}

	return ast.NewExportDecl(kw.Info.Combine(inner.Span()), inner)
}

func (p *parser) constDecl() ast.Decl {
	kw := p.consume()
	name, ty, init, semi := p.binding()

	return ast.NewConstDecl(kw.Info.Combine(semi), name, ty, init)
}

func (p *parser) staticDecl() ast.Decl {
	kw := p.consume()
	name, ty, init, semi := p.binding()

	return ast.NewStaticDecl(kw.Info.Combine(semi), name, ty, init)
}

// binding parses the shared tail of const/static/let/mut: an identifier, an
// optional type annotation, `=`, the initializer, and the terminating
// semicolon. The semicolon is recovered in place so a finished binding is
// not thrown away over a missing `;`.
func (p *parser) binding() (string, *ast.TypeExpr, ast.Expr, source.Info) {
	name := p.expect(token.Identifier, diag.ExpectedIdentifier)

	ty := ast.NewImplied(name.Info)
	if p.match(token.SymColon) {
		ty = p.parseType()
	}

	p.expect(token.SymEqual, diag.UnexpectedTok)
	init := p.expression()

	return name.Raw, ty, init, p.finishStmt(init.Span())
}

// finishStmt consumes the terminating semicolon of a statement. Statements
// that end with a `}` don't need one. A missing semicolon is recovered in
// place so the finished statement is not thrown away.
func (p *parser) finishStmt(end source.Info) source.Info {
	if p.check(token.SymSemicolon) {
		return p.consume().Info
	}

	if p.pos > 0 && p.previous().Kind == token.SymCloseBrace {
		return end
	}

	p.errorAtCurrent(diag.ExpectedSemi, "")
	p.synchronize()

	return end
}

func (p *parser) typeAliasDecl() ast.Decl {
	kw := p.consume()
	name := p.expect(token.Identifier, diag.ExpectedIdentifier)
	p.expect(token.SymEqual, diag.UnexpectedTok)
	aliased := p.parseType()
	semi := p.expect(token.SymSemicolon, diag.ExpectedSemi)

	return ast.NewTypeAliasDecl(kw.Info.Combine(semi.Info), name.Raw, aliased)
}

func (p *parser) fnDecl() ast.Decl {
	kw := p.consume()
	name := p.expect(token.Identifier, diag.ExpectedIdentifier)

	p.expect(token.SymOpenParen, diag.UnexpectedTok)

	var args []*ast.ArgumentDecl
	for !p.check(token.SymCloseParen) {
		if len(args) > 0 && !p.match(token.SymComma) {
			p.errorAtCurrent(diag.ExpectedComma, "")
			panic(bail{})
		}

		argName := p.expect(token.Identifier, diag.ExpectedIdentifier)
		p.expect(token.SymColon, diag.UnexpectedTok)
		argType := p.parseType()

		args = append(args, ast.NewArgumentDecl(
			argName.Info.Combine(argType.Info), argName.Raw, argType))
	}

	close := p.expect(token.SymCloseParen, diag.UnclosedParen)

	ret := ast.NewVoid(close.Info)
	if p.match(token.SymColon) {
		ret = p.parseType()
	}

	body := p.block()

	return ast.NewFnDecl(kw.Info.Combine(body.Span()), name.Raw, args, ret, body)
}

// statement parses one statement, recovering inside the enclosing block if
// it fails.
func (p *parser) statement() (stmt ast.Stmt) {
	start := p.pos

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bail); !ok {
				panic(r)
			}

			p.recoverFrom(start)
			stmt = nil
		}
	}()

	return p.parseStmt()
}

func (p *parser) parseStmt() ast.Stmt {
	switch p.current().Kind {
	case token.KwLet:
		kw := p.consume()
		name, ty, init, semi := p.binding()
		return ast.NewLetStmt(kw.Info.Combine(semi), name, ty, init)

	case token.KwMut:
		kw := p.consume()
		name, ty, init, semi := p.binding()
		return ast.NewMutStmt(kw.Info.Combine(semi), name, ty, init)

	case token.KwRet:
		return p.retStmt()

	case token.KwLoop:
		kw := p.consume()
		body := p.expression()
		return ast.NewLoopStmt(kw.Info.Combine(body.Span()), nil, body)

	case token.KwWhile, token.KwFor:
		kw := p.consume()
		cond := p.expression()
		body := p.expression()
		return ast.NewLoopStmt(kw.Info.Combine(body.Span()), cond, body)

	default:
		return p.exprStmt()
	}
}

func (p *parser) retStmt() ast.Stmt {
	kw := p.consume()

	if p.check(token.SymSemicolon) {
		semi := p.consume()
		return ast.NewRetStmt(kw.Info.Combine(semi.Info), nil)
	}

	value := p.expression()
	end := p.finishStmt(value.Span())

	return ast.NewRetStmt(kw.Info.Combine(end), value)
}

func (p *parser) exprStmt() ast.Stmt {
	x := p.expression()
	end := p.finishStmt(x.Span())

	return ast.NewExprStmt(x.Span().Combine(end), x)
}

// block parses `{ statement* }`. The closing brace is required; running out
// of input inside a block reports unmatched_brace against the opener.
func (p *parser) block() *ast.Block {
	open := p.expect(token.SymOpenBrace, diag.ExpectedOpeningBrace)

	var stmts []ast.Stmt
	for !p.check(token.SymCloseBrace) {
		if p.atEnd() {
			p.report(diag.UnmatchedBrace, open.Info, "")
			panic(bail{})
		}

		if stmt := p.statement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	close := p.consume()

	return ast.NewBlock(open.Info.Combine(close.Info), stmts)
}
