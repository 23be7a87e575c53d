package parser

import (
	"strconv"
	"strings"

	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/token"
)

// assignOps are the right-associative level-1 operators.
var assignOps = []token.Kind{
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

// unaryOps are the level-15 prefix operators.
var unaryOps = []token.Kind{
	token.SymTilde,
	token.SymStar,
	token.SymPound,
	token.SymAt,
	token.SymPlus,
	token.SymHyphen,
	token.KwClone,
}

func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
func (p *parser) assignment() ast.Expr {
	expr := p.ifThen()

	if !p.atEnd() && p.toks[p.pos].IsOneOf(assignOps...) {
		op := p.consume()
		value := p.assignment()

		return ast.NewBinary(expr.Span().Combine(value.Span()), op.Kind, expr, value)
	}

	return expr
}

// ifThen parses both forms of `if`. The `then` keyword switches to the
// expression form, where both arms are expressions and `else` is required;
// without it both arms are blocks and `else` is optional.
func (p *parser) ifThen() ast.Expr {
	if !p.check(token.KwIf) {
		return p.logicalOr()
	}

	kw := p.consume()
	cond := p.expression()

	if p.match(token.KwThen) {
		then := p.expression()

		if !p.match(token.KwElse) {
			p.errorAtCurrent(diag.ExpectedElseAfterThen, "")
			return ast.NewIfElse(kw.Info.Combine(then.Span()), cond, then, nil, true)
		}

		els := p.expression()

		return ast.NewIfElse(kw.Info.Combine(els.Span()), cond, then, els, true)
	}

	then := p.block()

	if p.match(token.KwElse) {
		els := p.block()
		return ast.NewIfElse(kw.Info.Combine(els.Span()), cond, then, els, false)
	}

	return ast.NewIfElse(kw.Info.Combine(then.Span()), cond, then, nil, false)
}

// binaryLevel peels operators of one precedence level off left-to-right.
func (p *parser) binaryLevel(next func() ast.Expr, ops ...token.Kind) ast.Expr {
	expr := next()

	for !p.atEnd() && p.toks[p.pos].IsOneOf(ops...) {
		op := p.consume()
		rhs := next()
		expr = ast.NewBinary(expr.Span().Combine(rhs.Span()), op.Kind, expr, rhs)
	}

	return expr
}

func (p *parser) logicalOr() ast.Expr {
	return p.binaryLevel(p.logicalXor, token.KwOr)
}

func (p *parser) logicalXor() ast.Expr {
	return p.binaryLevel(p.logicalAnd, token.KwXor)
}

func (p *parser) logicalAnd() ast.Expr {
	return p.binaryLevel(p.logicalNot, token.KwAnd)
}

// logicalNot is the one prefix operator with its own precedence level.
func (p *parser) logicalNot() ast.Expr {
	if p.check(token.KwNot) {
		op := p.consume()
		operand := p.logicalNot()

		return ast.NewUnary(op.Info.Combine(operand.Span()), op.Kind, operand)
	}

	return p.equality()
}

func (p *parser) equality() ast.Expr {
	return p.binaryLevel(p.relational, token.SymEqualEqual, token.SymBangEqual)
}

func (p *parser) relational() ast.Expr {
	return p.binaryLevel(p.bitwiseOr, token.SymLt, token.SymLeq, token.SymGt, token.SymGeq)
}

func (p *parser) bitwiseOr() ast.Expr {
	return p.binaryLevel(p.bitwiseXor, token.SymPipe)
}

func (p *parser) bitwiseXor() ast.Expr {
	return p.binaryLevel(p.bitwiseAnd, token.SymCaret)
}

func (p *parser) bitwiseAnd() ast.Expr {
	return p.binaryLevel(p.bitshift, token.SymPound)
}

func (p *parser) bitshift() ast.Expr {
	return p.binaryLevel(p.addition, token.SymLtLt, token.SymGtGt)
}

func (p *parser) addition() ast.Expr {
	return p.binaryLevel(p.multiplication, token.SymPlus, token.SymHyphen)
}

func (p *parser) multiplication() ast.Expr {
	return p.binaryLevel(p.unary, token.SymStar, token.SymForwardSlash, token.SymPercent)
}

// unary is right-recursive, so `- *x` is `-(*x)`. (Written without the
// space, `-*` opens a block comment in the lexer.)
func (p *parser) unary() ast.Expr {
	if !p.atEnd() && p.toks[p.pos].IsOneOf(unaryOps...) {
		op := p.consume()
		operand := p.unary()

		return ast.NewUnary(op.Info.Combine(operand.Span()), op.Kind, operand)
	}

	return p.call()
}

// call left-folds call, index and field-access suffixes onto a primary.
func (p *parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.check(token.SymOpenParen):
			p.consume()

			var args []ast.Expr
			for !p.check(token.SymCloseParen) {
				if len(args) > 0 && !p.match(token.SymComma) {
					p.errorAtCurrent(diag.ExpectedComma, "")
					panic(bail{})
				}

				args = append(args, p.expression())
			}

			close := p.expect(token.SymCloseParen, diag.UnclosedParen)
			expr = ast.NewCall(expr.Span().Combine(close.Info), expr, args)

		case p.check(token.SymOpenBracket):
			p.consume()
			idx := p.expression()
			close := p.expect(token.SymCloseBracket, diag.ExpectedClosingBracket)
			expr = ast.NewIndex(expr.Span().Combine(close.Info), expr, idx)

		case p.check(token.SymDot):
			p.consume()
			field := p.expect(token.Identifier, diag.ExpectedIdentifier)
			expr = ast.NewFieldAccess(expr.Span().Combine(field.Info), expr, field.Raw)

		default:
			return expr
		}
	}
}

func (p *parser) primary() ast.Expr {
	tok := p.current()

	switch tok.Kind {
	case token.LitInt:
		return p.intLiteral()

	case token.LitFloat:
		p.consume()
		value, _ := strconv.ParseFloat(tok.Raw, 64)
		return ast.NewFloatLit(tok.Info, value)

	case token.LitBool:
		p.consume()
		return ast.NewBoolLit(tok.Info, tok.Raw == "true")

	case token.LitChar:
		return p.charLiteral()

	case token.LitString:
		p.consume()
		content := strings.ReplaceAll(tok.Raw[1:len(tok.Raw)-1], `\"`, `"`)
		return ast.NewStringLit(tok.Info, content)

	case token.Identifier:
		// `Name { field: ... }` is a struct initializer; the three-token
		// lookahead keeps `if cond { ... }` from matching.
		if p.checkAhead(1, token.SymOpenBrace) &&
			p.checkAhead(2, token.Identifier) && p.checkAhead(3, token.SymColon) {
			return p.structInit()
		}

		p.consume()
		return ast.NewIdentifier(tok.Info, tok.Raw)

	case token.SymOpenParen:
		p.consume()
		expr := p.expression()
		p.expect(token.SymCloseParen, diag.UnclosedParen)
		return expr

	case token.SymOpenBrace:
		return p.block()

	case token.KwIf:
		return p.ifThen()

	default:
		p.errorAtCurrent(diag.ExpectedExpression, "")
		panic(bail{})
	}
}

// intLiteral range-checks the literal: integer literals are i32 and must
// fit inside it.
func (p *parser) intLiteral() ast.Expr {
	tok := p.consume()

	value, err := strconv.ParseInt(tok.Raw, 10, 32)
	if err != nil {
		p.report(diag.NumberLiteralTooLarge, tok.Info, "")
		value = 0
	}

	return ast.NewIntLit(tok.Info, value)
}

// charLiteral unescapes the delimiter and rejects multi-byte contents.
func (p *parser) charLiteral() ast.Expr {
	tok := p.consume()

	content := strings.ReplaceAll(tok.Raw[1:len(tok.Raw)-1], `\'`, `'`)
	if len(content) != 1 {
		p.report(diag.InvalidCharLiteral, tok.Info, "")

		if content == "" {
			return ast.NewCharLit(tok.Info, 0)
		}
	}

	return ast.NewCharLit(tok.Info, content[0])
}

func (p *parser) structInit() ast.Expr {
	name := p.consume()
	p.consume() // {

	var fields []ast.FieldInit
	for !p.check(token.SymCloseBrace) {
		if len(fields) > 0 && !p.match(token.SymComma) {
			p.errorAtCurrent(diag.ExpectedComma, "")
			panic(bail{})
		}

		// allow a trailing comma before the closer
		if p.check(token.SymCloseBrace) {
			break
		}

		fieldName := p.expect(token.Identifier, diag.ExpectedIdentifier)
		p.expect(token.SymColon, diag.UnexpectedTok)
		value := p.expression()

		fields = append(fields, ast.FieldInit{
			Info:  fieldName.Info.Combine(value.Span()),
			Name:  fieldName.Raw,
			Value: value,
		})
	}

	close := p.expect(token.SymCloseBrace, diag.UnmatchedBrace)

	return ast.NewStructInit(name.Info.Combine(close.Info), name.Raw, fields)
}
