package diag

import "sort"

// Sink accepts diagnostics from a stage. Reporting never fails and never
// panics; stages report and keep going.
type Sink interface {
	Report(err *Error)
}

// Queue is the standard Sink: it buffers every reported error in arrival
// order and hands the batch to the renderer when the stage is done.
type Queue struct {
	errors []*Error
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Report appends err to the queue. A nil error is ignored.
func (q *Queue) Report(err *Error) {
	if err == nil {
		return
	}

	q.errors = append(q.errors, err)
}

// Errors returns the buffered errors in report order.
func (q *Queue) Errors() []*Error {
	return q.errors
}

// HadErrors reports whether anything was reported.
func (q *Queue) HadErrors() bool {
	return len(q.errors) > 0
}

// Len returns the number of buffered errors.
func (q *Queue) Len() int {
	return len(q.errors)
}

// Drain removes and returns all buffered errors.
func (q *Queue) Drain() []*Error {
	errs := q.errors
	q.errors = nil
	return errs
}

// SortBySpan orders errs by path, then source position. Diagnostics within
// one file render in source order regardless of which pass found them.
func SortBySpan(errs []*Error) {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Span.Path != errs[j].Span.Path {
			return errs[i].Span.Path < errs[j].Span.Path
		}

		return errs[i].Span.Position < errs[j].Span.Position
	})
}
