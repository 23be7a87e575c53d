package pretty

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
)

// Renderer pretty-prints diagnostics against their source text. One error
// renders as a block:
//
//	error: [E0001] unknown character! main.csc
//	   |
//	 3 | const x = $;
//	   |           ^
//	note: This character isn't used in any part of the language.
//
// The underline is a single caret for one-byte spans and a tilde run
// otherwise. When the header does not fit the terminal, the path drops to
// its own arrow line.
type Renderer struct {
	styles *Styles
	width  int
}

// NewRenderer creates a renderer with the given styles, detecting the
// terminal width from stdout.
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles, width: detectWidth()}
}

// NewRendererWidth creates a renderer with a fixed width, for tests.
func NewRendererWidth(styles *Styles, width int) *Renderer {
	return &Renderer{styles: styles, width: width}
}

func detectWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}

	return 80
}

// Render writes the block for one diagnostic. src is the full text of the
// file the diagnostic points into.
func (r *Renderer) Render(w io.Writer, err *diag.Error, src string) {
	r.renderHeader(w, err)
	r.renderCode(w, err, src)
	r.renderNote(w, err)
	fmt.Fprintln(w)
}

// RenderAll renders a batch of diagnostics. sources maps a display path to
// the file's text; diagnostics with no entry render without an excerpt.
func (r *Renderer) RenderAll(w io.Writer, errs []*diag.Error, sources map[string]string) {
	for _, err := range errs {
		r.Render(w, err, sources[err.Span.Path])
	}
}

// renderHeader prints `error: [Ennnn] message! path`, dropping the path to
// an arrow line when the terminal is too narrow for both.
func (r *Renderer) renderHeader(w io.Writer, err *diag.Error) {
	msg := fmt.Sprintf("[%s] %s!", err.Code, err.Message())

	// 8 covers "error: " plus the separating space
	if len(msg)+len(err.Span.Path)+8 <= r.width {
		fmt.Fprintf(w, "%s %s %s\n",
			r.styles.ErrorTag,
			r.styles.Message.Render(msg),
			r.styles.FilePath.Render(err.Span.Path))
		return
	}

	fmt.Fprintf(w, "%s %s\n", r.styles.ErrorTag, r.styles.Message.Render(msg))
	fmt.Fprintf(w, " -> %s\n", r.styles.FilePath.Render(err.Span.Path))
}

// renderCode prints the numbered source line and the underline beneath it.
func (r *Renderer) renderCode(w io.Writer, err *diag.Error, src string) {
	if src == "" {
		return
	}

	line := source.LineAt(src, err.Span)
	pipe := r.styles.Gutter.Render("|")
	padding := strings.Repeat(" ", digits(err.Span.Line))

	fmt.Fprintf(w, " %s %s\n", padding, pipe)
	fmt.Fprintf(w, " %d %s %s\n", err.Span.Line, pipe, r.styles.SourceLine.Render(line))

	// the span may run past the end of the line; never underline past it
	remaining := len(line) - (err.Span.Column - 1)
	length := min(err.Span.Length, remaining)

	pointOut := "^"
	if length > 1 {
		pointOut = strings.Repeat("~", length)
	}

	fmt.Fprintf(w, " %s %s %s%s\n",
		padding, pipe,
		strings.Repeat(" ", err.Span.Column-1),
		r.styles.PointOut.Render(pointOut))
}

// renderNote prints the explicit note when one was attached, falling back
// to the canonical note for the code. Codes without either print nothing.
func (r *Renderer) renderNote(w io.Writer, err *diag.Error) {
	note, ok := err.EffectiveNote()
	if !ok {
		return
	}

	fmt.Fprintf(w, "%s %s\n", r.styles.NoteTag, note)
}

// digits counts the base-10 digits of n, for gutter alignment.
func digits(n int) int {
	count := 1

	for n /= 10; n > 0; n /= 10 {
		count++
	}

	return count
}
