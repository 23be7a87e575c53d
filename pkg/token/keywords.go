package token

// kindSpelling maps each keyword and symbol kind to its canonical spelling.
// The reverse map is derived from it once at startup; literal and sentinel
// kinds get display-only names added after the reversal so they never match
// source text.
var kindSpelling = map[Kind]string{
	KwConst:    "const",
	KwStatic:   "static",
	KwFn:       "fn",
	KwStruct:   "struct",
	KwPub:      "pub",
	KwLet:      "let",
	KwMut:      "mut",
	KwLoop:     "loop",
	KwWhile:    "while",
	KwFor:      "for",
	KwIn:       "in",
	KwBreak:    "break",
	KwContinue: "continue",
	KwRet:      "ret",
	KwAssert:   "assert",
	KwModule:   "module",
	KwImport:   "import",
	KwAs:       "as",
	KwFrom:     "from",
	KwExport:   "export",
	KwIf:       "if",
	KwThen:     "then",
	KwElse:     "else",
	KwAnd:      "and",
	KwOr:       "or",
	KwXor:      "xor",
	KwNot:      "not",
	KwType:     "type",
	KwClone:    "clone",

	SymEqual:             "=",
	SymColon:             ":",
	SymColonColon:        "::",
	SymStar:              "*",
	SymPound:             "&",
	SymOpenBracket:       "[",
	SymCloseBracket:      "]",
	SymAt:                "@",
	SymDot:               ".",
	SymOpenBrace:         "{",
	SymCloseBrace:        "}",
	SymOpenParen:         "(",
	SymCloseParen:        ")",
	SymSemicolon:         ";",
	SymPipe:              "|",
	SymCaret:             "^",
	SymPlus:              "+",
	SymHyphen:            "-",
	SymForwardSlash:      "/",
	SymPercent:           "%",
	SymLt:                "<",
	SymLeq:               "<=",
	SymGt:                ">",
	SymGeq:               ">=",
	SymGtGt:              ">>",
	SymLtLt:              "<<",
	SymEqualEqual:        "==",
	SymBangEqual:         "!=",
	SymGtGtEqual:         ">>=",
	SymLtLtEqual:         "<<=",
	SymPoundEqual:        "&=",
	SymPipeEqual:         "|=",
	SymCaretEqual:        "^=",
	SymPercentEqual:      "%=",
	SymForwardSlashEqual: "/=",
	SymStarEqual:         "*=",
	SymHyphenEqual:       "-=",
	SymPlusEqual:         "+=",
	SymComma:             ",",
	SymTilde:             "~",
}

var spellingKind = make(map[string]Kind, len(kindSpelling)+2)

func init() {
	for kind, spelling := range kindSpelling {
		spellingKind[spelling] = kind
	}

	// These must not end up in the reverse map, so they are added after it
	// is built.
	kindSpelling[Identifier] = "identifier"
	kindSpelling[LitInt] = "integer literal"
	kindSpelling[LitFloat] = "float literal"
	kindSpelling[LitBool] = "bool literal"
	kindSpelling[LitChar] = "char literal"
	kindSpelling[LitString] = "string literal"
	kindSpelling[Unknown] = "unknown"
	kindSpelling[Error] = "error"

	// The bool literals spell like keywords but lex as literals.
	spellingKind["true"] = LitBool
	spellingKind["false"] = LitBool
}

// Lookup returns the kind spelled raw, if any. Identifier lexemes that miss
// this table stay identifiers.
func Lookup(raw string) (Kind, bool) {
	kind, ok := spellingKind[raw]
	return kind, ok
}

// Spelling returns the canonical spelling of kind, or a display name for
// kinds that have no fixed spelling.
func Spelling(kind Kind) string {
	return kindSpelling[kind]
}
