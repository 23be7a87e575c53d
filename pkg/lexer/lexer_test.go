package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/lexer"
	"github.com/evanacox/cascade/pkg/token"
)

func lex(t *testing.T, src string) ([]token.Token, *diag.Queue) {
	t.Helper()

	sink := diag.NewQueue()
	toks := lexer.Lex(src, "test.csc", sink)

	return toks, sink
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}

	return out
}

func TestLex_Declaration(t *testing.T) {
	toks, sink := lex(t, "const x = 5;")

	require.False(t, sink.HadErrors())
	assert.Equal(t, []token.Kind{
		token.KwConst, token.Identifier, token.SymEqual, token.LitInt, token.SymSemicolon,
	}, kinds(toks))
}

func TestLex_RawSlicesIntoSource(t *testing.T) {
	src := "fn add(a: i32): i32 { ret a; }"
	toks, sink := lex(t, src)

	require.False(t, sink.HadErrors())

	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Info.Length, 1)
		assert.Equal(t, src[tok.Info.Position:tok.Info.Position+tok.Info.Length], tok.Raw)
	}
}

func TestLex_LineAndColumnTracking(t *testing.T) {
	toks, sink := lex(t, "let a = 1;\nlet b = 2;")

	require.False(t, sink.HadErrors())
	require.Len(t, toks, 10)

	assert.Equal(t, 1, toks[0].Info.Line)
	assert.Equal(t, 1, toks[0].Info.Column)
	assert.Equal(t, 2, toks[5].Info.Line)
	assert.Equal(t, 1, toks[5].Info.Column)
	assert.Equal(t, "b", toks[6].Raw)
	assert.Equal(t, 5, toks[6].Info.Column)
}

func TestLex_Deterministic(t *testing.T) {
	src := "fn f() { let x = 1 + 2 * 3; }"

	first, _ := lex(t, src)
	second, _ := lex(t, src)

	assert.Equal(t, first, second)
}

func TestLex_NumericLiterals(t *testing.T) {
	toks, sink := lex(t, "1 22 3.5 0.25")

	require.False(t, sink.HadErrors())
	assert.Equal(t, []token.Kind{
		token.LitInt, token.LitInt, token.LitFloat, token.LitFloat,
	}, kinds(toks))
	assert.Equal(t, "3.5", toks[2].Raw)
}

func TestLex_DigitsAbuttingLetters(t *testing.T) {
	toks, sink := lex(t, "123abc")

	assert.Empty(t, toks)
	require.Equal(t, 1, sink.Len())

	err := sink.Errors()[0]
	assert.Equal(t, diag.UnexpectedTok, err.Code)

	note, ok := err.EffectiveNote()
	assert.True(t, ok)
	assert.Equal(t, "Did you leave out a space?", note)
}

func TestLex_DotNotFollowedByDigit(t *testing.T) {
	toks, sink := lex(t, "5.foo")

	require.False(t, sink.HadErrors())
	assert.Equal(t, []token.Kind{token.LitInt, token.SymDot, token.Identifier}, kinds(toks))
}

func TestLex_BoolLiterals(t *testing.T) {
	toks, sink := lex(t, "true false")

	require.False(t, sink.HadErrors())
	assert.Equal(t, []token.Kind{token.LitBool, token.LitBool}, kinds(toks))
}

func TestLex_Strings(t *testing.T) {
	toks, sink := lex(t, `"hello" "with \" escape"`)

	require.False(t, sink.HadErrors())
	require.Len(t, toks, 2)
	assert.Equal(t, `"hello"`, toks[0].Raw)
	assert.Equal(t, `"with \" escape"`, toks[1].Raw)
}

func TestLex_UnterminatedString(t *testing.T) {
	toks, sink := lex(t, `const x = "`)

	// No string literal token is produced, and exactly one error.
	for _, tok := range toks {
		assert.NotEqual(t, token.LitString, tok.Kind)
	}

	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diag.UnterminatedStr, sink.Errors()[0].Code)
}

func TestLex_UnterminatedChar(t *testing.T) {
	_, sink := lex(t, "'a")

	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diag.UnterminatedChar, sink.Errors()[0].Code)
}

func TestLex_Comments(t *testing.T) {
	toks, sink := lex(t, "-- a line comment\nlet -* block\ncomment *- x;")

	require.False(t, sink.HadErrors())
	assert.Equal(t, []token.Kind{token.KwLet, token.Identifier, token.SymSemicolon}, kinds(toks))
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	toks, sink := lex(t, "let x; -* never closed")

	assert.Len(t, toks, 3)
	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diag.UnterminatedBlockComment, sink.Errors()[0].Code)
}

func TestLex_LongestMatchSymbols(t *testing.T) {
	tests := []struct {
		src  string
		want []token.Kind
	}{
		{"<<=", []token.Kind{token.SymLtLtEqual}},
		{">>=", []token.Kind{token.SymGtGtEqual}},
		{"<<", []token.Kind{token.SymLtLt}},
		{"<=", []token.Kind{token.SymLeq}},
		{"<", []token.Kind{token.SymLt}},
		{"::", []token.Kind{token.SymColonColon}},
		{":", []token.Kind{token.SymColon}},
		{"== =", []token.Kind{token.SymEqualEqual, token.SymEqual}},
		{"+= +", []token.Kind{token.SymPlusEqual, token.SymPlus}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks, sink := lex(t, tt.src)
			require.False(t, sink.HadErrors())
			assert.Equal(t, tt.want, kinds(toks))
		})
	}
}

func TestLex_UnknownCharacter(t *testing.T) {
	toks, sink := lex(t, "let x = $;")

	require.Equal(t, 1, sink.Len())
	assert.Equal(t, diag.UnknownChar, sink.Errors()[0].Code)

	// The lexer keeps going after the bad byte.
	assert.Equal(t, []token.Kind{
		token.KwLet, token.Identifier, token.SymEqual, token.SymSemicolon,
	}, kinds(toks))
}

func TestLex_ErrorsInSourceOrder(t *testing.T) {
	_, sink := lex(t, "$ ?")

	require.Equal(t, 2, sink.Len())
	assert.Less(t, sink.Errors()[0].Span.Position, sink.Errors()[1].Span.Position)
}
