package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
)

func TestCode_String(t *testing.T) {
	assert.Equal(t, "E0001", diag.UnknownChar.String())
	assert.Equal(t, "E0022", diag.DuplicateModule.String())
	assert.Equal(t, "E0023", diag.MismatchedTypes.String())
}

func TestMessage_EveryCodeHasOne(t *testing.T) {
	for code := diag.UnknownChar; code <= diag.UnknownIdentifier; code++ {
		assert.NotEmpty(t, diag.Message(code), code.String())
	}
}

func TestEffectiveNote_ExplicitOverridesCanonical(t *testing.T) {
	span := source.New(0, 1, 1, 1, "a.csc")

	err := diag.New(diag.ExpectedSemi, span, diag.FromToken)
	note, ok := err.EffectiveNote()
	assert.True(t, ok)
	assert.Contains(t, note, "All statements require a ';'")

	err = err.WithNote("missing ';' after this statement")
	note, ok = err.EffectiveNote()
	assert.True(t, ok)
	assert.Equal(t, "missing ';' after this statement", note)
}

func TestEffectiveNote_AbsentWhenNoCanonical(t *testing.T) {
	span := source.New(0, 1, 1, 1, "a.csc")

	_, ok := diag.New(diag.DuplicateModule, span, diag.FromToken).EffectiveNote()
	assert.False(t, ok)
}

func TestQueue_PreservesOrder(t *testing.T) {
	q := diag.NewQueue()
	assert.False(t, q.HadErrors())

	q.Report(diag.New(diag.UnknownChar, source.New(5, 1, 6, 1, "a.csc"), diag.FromToken))
	q.Report(diag.New(diag.ExpectedSemi, source.New(9, 1, 10, 1, "a.csc"), diag.FromToken))
	q.Report(nil)

	assert.True(t, q.HadErrors())
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, diag.UnknownChar, q.Errors()[0].Code)

	drained := q.Drain()
	assert.Len(t, drained, 2)
	assert.False(t, q.HadErrors())
}

func TestSortBySpan(t *testing.T) {
	errs := []*diag.Error{
		diag.New(diag.ExpectedSemi, source.New(20, 2, 1, 1, "b.csc"), diag.FromToken),
		diag.New(diag.UnknownChar, source.New(9, 1, 10, 1, "b.csc"), diag.FromToken),
		diag.New(diag.MismatchedTypes, source.New(4, 1, 5, 3, "a.csc"), diag.FromType),
	}

	diag.SortBySpan(errs)

	assert.Equal(t, "a.csc", errs[0].Span.Path)
	assert.Equal(t, 9, errs[1].Span.Position)
	assert.Equal(t, 20, errs[2].Span.Position)
}
