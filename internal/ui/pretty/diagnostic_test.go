package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanacox/cascade/internal/ui/pretty"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
)

func render(t *testing.T, err *diag.Error, src string, width int) string {
	t.Helper()

	var b strings.Builder
	r := pretty.NewRendererWidth(pretty.NewStyles(false), width)
	r.Render(&b, err, src)

	return b.String()
}

func TestRender_Basic(t *testing.T) {
	src := "const x = $;"
	err := diag.New(diag.UnknownChar, source.New(10, 1, 11, 1, "main.csc"), diag.FromToken)

	out := render(t, err, src, 80)

	assert.Contains(t, out, "error: [E0001] unknown character! main.csc")
	assert.Contains(t, out, "1 | const x = $;")
	assert.Contains(t, out, "|           ^")
	assert.Contains(t, out, "note: This character isn't used in any part of the language.")
}

func TestRender_TildeUnderlineForWideSpans(t *testing.T) {
	src := "const x: i32 = 3.5;"
	err := diag.New(diag.MismatchedTypes, source.New(15, 1, 16, 3, "main.csc"), diag.FromType).
		WithNote("Expected type 'i32', got type 'f64'.")

	out := render(t, err, src, 80)

	assert.Contains(t, out, "~~~")
	assert.NotContains(t, out, "^")
	assert.Contains(t, out, "note: Expected type 'i32', got type 'f64'.")
}

func TestRender_NarrowTerminalDropsPathToArrowLine(t *testing.T) {
	src := "const x = $;"
	err := diag.New(diag.UnknownChar,
		source.New(10, 1, 11, 1, "some/long/path/main.csc"), diag.FromToken)

	out := render(t, err, src, 30)

	assert.Contains(t, out, " -> some/long/path/main.csc")
}

func TestRender_NoNoteLineWhenCodeHasNone(t *testing.T) {
	src := "module a; module b;"
	err := diag.New(diag.DuplicateModule, source.New(10, 1, 11, 9, "main.csc"), diag.FromToken)

	out := render(t, err, src, 80)

	assert.NotContains(t, out, "note:")
}

func TestRender_MissingSourceSkipsExcerpt(t *testing.T) {
	err := diag.New(diag.UnknownChar, source.New(0, 1, 1, 1, "main.csc"), diag.FromToken)

	out := render(t, err, "", 80)

	assert.Contains(t, out, "error:")
	assert.NotContains(t, out, "|")
}

func TestRender_GutterAlignsMultiDigitLines(t *testing.T) {
	src := strings.Repeat("\n", 11) + "const x = $;"
	err := diag.New(diag.UnknownChar, source.New(21, 12, 11, 1, "main.csc"), diag.FromToken)

	out := render(t, err, src, 80)

	assert.Contains(t, out, "12 | const x = $;")
	assert.Contains(t, out, "   |           ^")
}

func TestRender_UnderlineClampedToLineEnd(t *testing.T) {
	src := "const x = \"abc"
	err := diag.New(diag.UnterminatedStr, source.New(10, 1, 11, 8, "main.csc"), diag.FromToken)

	out := render(t, err, src, 80)

	assert.Contains(t, out, "~~~~")
	assert.NotContains(t, out, "~~~~~")
}

func TestRenderAll(t *testing.T) {
	errs := []*diag.Error{
		diag.New(diag.UnknownChar, source.New(0, 1, 1, 1, "a.csc"), diag.FromToken),
		diag.New(diag.ExpectedSemi, source.New(0, 1, 1, 1, "b.csc"), diag.FromToken),
	}
	sources := map[string]string{"a.csc": "$", "b.csc": "x"}

	var b strings.Builder
	r := pretty.NewRendererWidth(pretty.NewStyles(false), 80)
	r.RenderAll(&b, errs, sources)

	out := b.String()
	assert.Contains(t, out, "a.csc")
	assert.Contains(t, out, "b.csc")
	assert.Contains(t, out, "E0001")
	assert.Contains(t, out, "E0010")
}
