package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/token"
)

func TestLookup_Keywords(t *testing.T) {
	tests := []struct {
		raw  string
		kind token.Kind
	}{
		{"const", token.KwConst},
		{"fn", token.KwFn},
		{"ret", token.KwRet},
		{"module", token.KwModule},
		{"then", token.KwThen},
		{"clone", token.KwClone},
		{"type", token.KwType},
		{"not", token.KwNot},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			kind, ok := token.Lookup(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestLookup_BoolLiterals(t *testing.T) {
	for _, raw := range []string{"true", "false"} {
		kind, ok := token.Lookup(raw)
		assert.True(t, ok)
		assert.Equal(t, token.LitBool, kind)
	}
}

func TestLookup_Symbols(t *testing.T) {
	tests := []struct {
		raw  string
		kind token.Kind
	}{
		{"=", token.SymEqual},
		{"==", token.SymEqualEqual},
		{"<<=", token.SymLtLtEqual},
		{">>=", token.SymGtGtEqual},
		{"::", token.SymColonColon},
		{",", token.SymComma},
	}

	for _, tt := range tests {
		kind, ok := token.Lookup(tt.raw)
		assert.True(t, ok, tt.raw)
		assert.Equal(t, tt.kind, kind)
	}
}

func TestLookup_MissesIdentifiers(t *testing.T) {
	_, ok := token.Lookup("somename")
	assert.False(t, ok)
}

func TestSpelling_DisplayNames(t *testing.T) {
	assert.Equal(t, "identifier", token.Spelling(token.Identifier))
	assert.Equal(t, "integer literal", token.Spelling(token.LitInt))
	assert.Equal(t, "const", token.Spelling(token.KwConst))
	assert.Equal(t, ";", token.Spelling(token.SymSemicolon))
}

func TestSpelling_NeverReversesDisplayNames(t *testing.T) {
	_, ok := token.Lookup("identifier")
	assert.False(t, ok)
	_, ok = token.Lookup("unknown")
	assert.False(t, ok)
}

func TestClassification(t *testing.T) {
	info := source.New(0, 1, 1, 1, "a.csc")

	assert.True(t, token.New(info, token.LitInt, "5").IsLiteral())
	assert.True(t, token.New(info, token.KwFn, "fn").IsKeyword())
	assert.True(t, token.New(info, token.SymPlus, "+").IsSymbol())

	id := token.New(info, token.Identifier, "x")
	assert.False(t, id.IsLiteral())
	assert.False(t, id.IsKeyword())
	assert.False(t, id.IsSymbol())
	assert.True(t, id.Is(token.Identifier))
	assert.True(t, id.IsOneOf(token.KwFn, token.Identifier))
}
