package pretty

import (
	"fmt"

	"github.com/evanacox/cascade/pkg/compiler"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 errors in 2 files".
func (s *Styles) FormatSummaryOneLine(stats compiler.Stats) string {
	fileWord := "files"
	if stats.FilesProcessed == 1 {
		fileWord = "file"
	}

	if stats.DiagnosticsTotal == 0 {
		return s.Success.Render("No errors") +
			s.Dim.Render(fmt.Sprintf(" (%d %s compiled)", stats.FilesProcessed, fileWord)) + "\n"
	}

	errorWord := "errors"
	if stats.DiagnosticsTotal == 1 {
		errorWord = "error"
	}

	return s.Failure.Render(fmt.Sprintf("%d %s", stats.DiagnosticsTotal, errorWord)) +
		s.Dim.Render(fmt.Sprintf(" in %d %s", stats.FilesProcessed, fileWord)) + "\n"
}
