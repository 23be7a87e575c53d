// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFiles  = "files"
	FieldInput  = "input"
	FieldOutput = "output"

	// Pipeline fields.
	FieldStage = "stage"
	FieldJobs  = "jobs"

	// Statistics fields.
	FieldFilesProcessed   = "files_processed"
	FieldTokensProduced   = "tokens_produced"
	FieldDiagnosticsTotal = "diagnostics_total"

	// Option fields.
	FieldEmit     = "emit"
	FieldOptimize = "optimize"
	FieldTarget   = "target"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
