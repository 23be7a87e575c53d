// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Diagnostic components
	ErrorTag string // rendered "error:" prefix
	NoteTag  string // rendered "note:" prefix

	Message    lipgloss.Style
	FilePath   lipgloss.Style
	Gutter     lipgloss.Style
	SourceLine lipgloss.Style
	PointOut   lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI colors.
func newColorStyles() *Styles {
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	return &Styles{
		ErrorTag: errStyle.Render("error:"),
		NoteTag:  noteStyle.Render("note:"),

		Message:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		FilePath:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Gutter:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		PointOut:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		ErrorTag: "error:",
		NoteTag:  "note:",

		Message:    plain,
		FilePath:   plain,
		Gutter:     plain,
		SourceLine: plain,
		PointOut:   plain,
		Success:    plain,
		Failure:    plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
