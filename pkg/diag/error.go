package diag

import "github.com/evanacox/cascade/pkg/source"

// Origin tags which stage a diagnostic came from.
type Origin uint8

const (
	// FromToken marks diagnostics created against a lexed token.
	FromToken Origin = iota

	// FromNode marks diagnostics created against a tree node.
	FromNode

	// FromType marks diagnostics created while assigning types.
	FromType
)

// Error is one diagnostic record. The span is snapshotted at construction;
// errors hold no references back into tokens or nodes.
type Error struct {
	// Code is the stable error number.
	Code Code

	// Span is where the error points.
	Span source.Info

	// Note optionally overrides the canonical note for Code.
	Note string

	// Origin records which stage produced the error.
	Origin Origin
}

// New creates an error with the canonical note.
func New(code Code, span source.Info, origin Origin) *Error {
	return &Error{Code: code, Span: span, Origin: origin}
}

// WithNote attaches an explicit note, overriding the canonical one.
func (e *Error) WithNote(note string) *Error {
	e.Note = note
	return e
}

// EffectiveNote returns the note to render: the explicit one when set,
// otherwise the canonical note for the code.
func (e *Error) EffectiveNote() (string, bool) {
	if e.Note != "" {
		return e.Note, true
	}

	return Note(e.Code)
}

// Message returns the canonical message for the error's code.
func (e *Error) Message() string {
	return Message(e.Code)
}
