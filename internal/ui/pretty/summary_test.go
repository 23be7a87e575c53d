package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evanacox/cascade/internal/ui/pretty"
	"github.com/evanacox/cascade/pkg/compiler"
)

func TestFormatSummaryOneLine_NoErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummaryOneLine(compiler.Stats{FilesProcessed: 3})

	assert.Contains(t, out, "No errors")
	assert.Contains(t, out, "3 files compiled")
}

func TestFormatSummaryOneLine_SingularForms(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummaryOneLine(compiler.Stats{
		FilesProcessed:   1,
		DiagnosticsTotal: 1,
	})

	assert.Contains(t, out, "1 error in 1 file")
}

func TestFormatSummaryOneLine_Errors(t *testing.T) {
	styles := pretty.NewStyles(false)

	out := styles.FormatSummaryOneLine(compiler.Stats{
		FilesProcessed:   2,
		DiagnosticsTotal: 5,
	})

	assert.Contains(t, out, "5 errors in 2 files")
}
