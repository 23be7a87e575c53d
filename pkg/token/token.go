// Package token defines the lexical atoms produced by the lexer.
package token

import "github.com/evanacox/cascade/pkg/source"

// Kind classifies a token.
type Kind uint8

// The full closed set of token kinds. Unknown is the sentinel the lexer
// emits for bytes it cannot classify; Error marks synthetic tokens that only
// exist to carry a diagnostic span.
const (
	Unknown Kind = iota
	Error

	// Literals.
	LitChar
	LitString
	LitInt
	LitFloat
	LitBool

	Identifier

	// Keywords.
	KwConst
	KwStatic
	KwFn
	KwStruct
	KwPub
	KwLet
	KwMut
	KwLoop
	KwWhile
	KwFor
	KwIn
	KwBreak
	KwContinue
	KwRet
	KwAssert
	KwModule
	KwImport
	KwAs
	KwFrom
	KwExport
	KwIf
	KwThen
	KwElse
	KwAnd
	KwOr
	KwXor
	KwNot
	KwType
	KwClone

	// Symbols.
	SymEqual
	SymColon
	SymColonColon
	SymStar
	SymPound
	SymOpenBracket
	SymCloseBracket
	SymAt
	SymDot
	SymOpenBrace
	SymCloseBrace
	SymOpenParen
	SymCloseParen
	SymSemicolon
	SymPipe
	SymCaret
	SymPlus
	SymHyphen
	SymForwardSlash
	SymPercent
	SymLt
	SymLeq
	SymGt
	SymGeq
	SymGtGt
	SymLtLt
	SymEqualEqual
	SymBangEqual
	SymGtGtEqual
	SymLtLtEqual
	SymPoundEqual
	SymPipeEqual
	SymCaretEqual
	SymPercentEqual
	SymForwardSlashEqual
	SymStarEqual
	SymHyphenEqual
	SymPlusEqual
	SymComma
	SymTilde
)

// Token is one lexical atom. Raw is a zero-copy slice into the source text,
// so it must not outlive the source buffer it was cut from.
type Token struct {
	Info source.Info
	Kind Kind
	Raw  string
}

// New creates a token.
func New(info source.Info, kind Kind, raw string) Token {
	return Token{Info: info, Kind: kind, Raw: raw}
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// IsOneOf reports whether the token has any of the given kinds.
func (t Token) IsOneOf(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}

	return false
}

// IsLiteral reports whether the token is any literal kind.
func (t Token) IsLiteral() bool {
	return t.Kind >= LitChar && t.Kind <= LitBool
}

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwConst && t.Kind <= KwClone
}

// IsSymbol reports whether the token is a symbol.
func (t Token) IsSymbol() bool {
	return t.Kind >= SymEqual && t.Kind <= SymTilde
}
