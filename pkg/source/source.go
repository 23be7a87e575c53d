// Package source models source text and the positions inside it.
//
// Every token, tree node and diagnostic carries an Info value describing the
// half-open byte range it came from. Positions are 0-based byte offsets;
// lines and columns are 1-based, matching what editors display.
package source

import "fmt"

// Info pins an atom to a location in a source file.
type Info struct {
	// Position is the 0-based byte offset of the first byte.
	Position int

	// Line is the 1-based line number of the first byte.
	Line int

	// Column is the 1-based column of the first byte.
	Column int

	// Length is the number of bytes covered. Always at least 1.
	Length int

	// Path is the file the range lives in, as given to the lexer.
	Path string
}

// New creates an Info for a range starting at the given cursor state.
func New(position, line, column, length int, path string) Info {
	return Info{
		Position: position,
		Line:     line,
		Column:   column,
		Length:   length,
		Path:     path,
	}
}

// End returns the byte offset one past the last covered byte.
func (i Info) End() int {
	return i.Position + i.Length
}

// Combine returns a span covering both i and other: the earlier position,
// line and column, with the length extended to reach the later end.
func (i Info) Combine(other Info) Info {
	first, second := i, other
	if second.Position < first.Position {
		first, second = second, first
	}

	end := first.End()
	if second.End() > end {
		end = second.End()
	}

	return Info{
		Position: first.Position,
		Line:     first.Line,
		Column:   first.Column,
		Length:   end - first.Position,
		Path:     first.Path,
	}
}

// Covers reports whether other lies entirely inside i.
func (i Info) Covers(other Info) bool {
	return other.Position >= i.Position && other.End() <= i.End()
}

// String renders the span as path:line:col.
func (i Info) String() string {
	return fmt.Sprintf("%s:%d:%d", i.Path, i.Line, i.Column)
}
