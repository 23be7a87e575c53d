// Package lexer turns source text into a flat stream of tokens.
//
// The scan is a single forward pass over the UTF-8 byte buffer. Malformed
// input never aborts it: errors go to the diagnostic sink with a synthetic
// token covering the offending span, and scanning continues at the next
// byte, so the caller always gets the full token vector.
package lexer

import (
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/token"
)

// symbols that are only ever a single character
var singleCharSymbols = map[string]token.Kind{
	"[": token.SymOpenBracket,
	"]": token.SymCloseBracket,
	"@": token.SymAt,
	".": token.SymDot,
	"{": token.SymOpenBrace,
	"}": token.SymCloseBrace,
	"(": token.SymOpenParen,
	")": token.SymCloseParen,
	";": token.SymSemicolon,
	",": token.SymComma,
	"~": token.SymTilde,
}

// symbols that are two or three characters, or one-character symbols that
// prefix a longer one; the scanner always tries the longest slice first
var compoundSymbols = map[string]token.Kind{
	"=":   token.SymEqual,
	":":   token.SymColon,
	"::":  token.SymColonColon,
	"*":   token.SymStar,
	"&":   token.SymPound,
	"|":   token.SymPipe,
	"^":   token.SymCaret,
	"+":   token.SymPlus,
	"-":   token.SymHyphen,
	"/":   token.SymForwardSlash,
	"%":   token.SymPercent,
	"<":   token.SymLt,
	"<=":  token.SymLeq,
	">":   token.SymGt,
	">=":  token.SymGeq,
	">>":  token.SymGtGt,
	"<<":  token.SymLtLt,
	"==":  token.SymEqualEqual,
	"!=":  token.SymBangEqual,
	">>=": token.SymGtGtEqual,
	"<<=": token.SymLtLtEqual,
	"&=":  token.SymPoundEqual,
	"|=":  token.SymPipeEqual,
	"^=":  token.SymCaretEqual,
	"%=":  token.SymPercentEqual,
	"/=":  token.SymForwardSlashEqual,
	"*=":  token.SymStarEqual,
	"-=":  token.SymHyphenEqual,
	"+=":  token.SymPlusEqual,
}

// Lex tokenizes one file eagerly, reporting errors through sink.
func Lex(src string, path string, sink diag.Sink) []token.Token {
	l := &lexer{
		src:  src,
		path: path,
		line: 1,
		col:  1,
		sink: sink,
	}

	return l.lex()
}

type lexer struct {
	src  string
	path string
	sink diag.Sink

	pos  int
	line int
	col  int

	// state at the start of the token being consumed
	startPos  int
	startLine int
	startCol  int
}

func (l *lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) current() byte {
	return l.src[l.pos]
}

// peek returns the byte after the current one, or 0 at the end.
func (l *lexer) peek() byte {
	if l.pos+1 >= len(l.src) {
		return 0
	}

	return l.src[l.pos+1]
}

func (l *lexer) consume(n int) {
	for i := 0; i < n; i++ {
		if l.current() == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}

		l.pos++
	}
}

func (l *lexer) updateStarting() {
	l.startPos = l.pos
	l.startLine = l.line
	l.startCol = l.col
}

// createToken builds a token spanning from the recorded start to the current
// position, with raw slicing straight into the source.
func (l *lexer) createToken(kind token.Kind, raw string) token.Token {
	info := source.New(l.startPos, l.startLine, l.startCol, max(len(raw), 1), l.path)
	return token.New(info, kind, raw)
}

func (l *lexer) createError(code diag.Code, tok token.Token, note string) {
	err := diag.New(code, tok.Info, diag.FromToken)
	if note != "" {
		err.WithNote(note)
	}

	l.sink.Report(err)
}

func (l *lexer) lex() []token.Token {
	var tokens []token.Token

	for !l.atEnd() {
		// chew through any whitespace
		if isSpace(l.current()) {
			l.consume(1)
			continue
		}

		l.updateStarting()

		switch {
		case l.current() == '-' && l.peek() == '-':
			l.lineComment()

		case l.current() == '-' && l.peek() == '*':
			l.blockComment()

		case isDigit(l.current()):
			if tok, ok := l.consumeDigits(); ok {
				tokens = append(tokens, tok)
			}

		case isAlpha(l.current()) || l.current() == '_':
			tokens = append(tokens, l.consumeIdentifier())

		case l.current() == '"':
			if tok, ok := l.consumeStringlike('"'); ok {
				tokens = append(tokens, tok)
			}

		case l.current() == '\'':
			if tok, ok := l.consumeStringlike('\''); ok {
				tokens = append(tokens, tok)
			}

		default:
			if tok, ok := l.consumeSymbol(); ok {
				tokens = append(tokens, tok)
			} else {
				l.createError(diag.UnknownChar,
					l.createToken(token.Unknown, l.src[l.pos:l.pos+1]), "")
				l.consume(1)
			}
		}
	}

	return tokens
}

func (l *lexer) lineComment() {
	for !l.atEnd() && l.current() != '\n' {
		l.consume(1)
	}
}

func (l *lexer) blockComment() {
	l.consume(2) // -*

	for !l.atEnd() && !(l.current() == '*' && l.peek() == '-') {
		l.consume(1)
	}

	if l.atEnd() {
		l.createError(diag.UnterminatedBlockComment,
			l.createToken(token.Error, l.src[l.startPos:l.startPos+2]),
			"did you leave out '*-' to end the comment?")
		return
	}

	l.consume(2) // *-
}

// consumeDigits scans an integer or float literal. Per the grammar a float
// is digits, one dot, digits; a dot not followed by a digit belongs to the
// following token (e.g. a field access).
func (l *lexer) consumeDigits() (token.Token, bool) {
	isFloat := false

	for !l.atEnd() && isDigit(l.current()) {
		l.consume(1)
	}

	if !l.atEnd() && l.current() == '.' && isDigit(l.peek()) {
		isFloat = true
		l.consume(1)

		for !l.atEnd() && isDigit(l.current()) {
			l.consume(1)
		}
	}

	// digits running straight into letters is always a mistake
	if !l.atEnd() && (isAlpha(l.current()) || l.current() == '_') {
		tok := l.consumeIdentifier()
		l.createError(diag.UnexpectedTok, tok, "Did you leave out a space?")

		return token.Token{}, false
	}

	kind := token.LitInt
	if isFloat {
		kind = token.LitFloat
	}

	return l.createToken(kind, l.src[l.startPos:l.pos]), true
}

func (l *lexer) consumeIdentifier() token.Token {
	for !l.atEnd() && (isAlpha(l.current()) || isDigit(l.current()) || l.current() == '_') {
		l.consume(1)
	}

	full := l.src[l.startPos:l.pos]

	if kind, ok := token.Lookup(full); ok {
		return l.createToken(kind, full)
	}

	return l.createToken(token.Identifier, full)
}

// consumeStringlike scans a string or char literal delimited by delim. The
// backslash escapes only the delimiter itself.
func (l *lexer) consumeStringlike(delim byte) (token.Token, bool) {
	l.consume(1) // opening delimiter

	for !l.atEnd() && l.current() != delim {
		if l.current() == '\\' && l.peek() == delim {
			l.consume(2)
			continue
		}

		l.consume(1)
	}

	if l.atEnd() {
		kind, code := token.LitString, diag.UnterminatedStr
		if delim == '\'' {
			kind, code = token.LitChar, diag.UnterminatedChar
		}

		l.createError(code, l.createToken(kind, l.src[l.startPos:l.pos]), "")

		return token.Token{}, false
	}

	l.consume(1) // closing delimiter

	kind := token.LitString
	if delim == '\'' {
		kind = token.LitChar
	}

	return l.createToken(kind, l.src[l.startPos:l.pos]), true
}

// consumeSymbol tries the longest slice first so `<<=` wins over `<<` and
// `<<` over `<`.
func (l *lexer) consumeSymbol() (token.Token, bool) {
	remaining := len(l.src) - l.pos

	for n := 3; n >= 1; n-- {
		if n > remaining {
			continue
		}

		raw := l.src[l.pos : l.pos+n]

		if kind, ok := compoundSymbols[raw]; ok {
			l.consume(n)
			return l.createToken(kind, raw), true
		}

		if n == 1 {
			if kind, ok := singleCharSymbols[raw]; ok {
				l.consume(1)
				return l.createToken(kind, raw), true
			}
		}
	}

	return token.Token{}, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
