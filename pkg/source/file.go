package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// stdinPath is the display path used for source read from standard input.
const stdinPath = "<stdin>"

// File is one unit of source text. Text is normalized to LF line endings
// before anything downstream sees it, so byte offsets are stable across
// platforms.
type File struct {
	// Path is the path used in diagnostics, relative to the working
	// directory when possible.
	Path string

	// Text is the normalized UTF-8 contents.
	Text string
}

// Read loads a source file from disk.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source %s: %w", path, err)
	}

	return &File{Path: DisplayPath(path), Text: Normalize(string(data))}, nil
}

// ReadStdin loads one source file from the given reader, used when the
// compiler is invoked with no file arguments.
func ReadStdin(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return &File{Path: stdinPath, Text: Normalize(string(data))}, nil
}

// Normalize translates CRLF line endings to LF.
func Normalize(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// DisplayPath rewrites path relative to the current working directory for
// diagnostic display. Paths that cannot be made relative are left alone.
func DisplayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(wd, abs)
	if err != nil {
		return path
	}

	return rel
}

// LineAt extracts the full source line containing info's start, without its
// trailing newline. The renderer uses this to show the offending line.
func LineAt(text string, info Info) string {
	// info.Position is 0-based, info.Column is 1-based.
	start := info.Position - (info.Column - 1)
	if start < 0 || start > len(text) {
		return ""
	}

	end := strings.IndexByte(text[start:], '\n')
	if end < 0 {
		return text[start:]
	}

	return text[start : start+end]
}
