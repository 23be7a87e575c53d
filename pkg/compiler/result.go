package compiler

import (
	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/source"
	"github.com/evanacox/cascade/pkg/token"
)

// FileOutcome is the result of lexing and parsing one file.
type FileOutcome struct {
	// File is the source unit this outcome belongs to.
	File *source.File

	// Tokens is the full token vector, present even on errors.
	Tokens []token.Token

	// Program is the (possibly incomplete) parse tree.
	Program *ast.Program

	// Diagnostics holds the file's lex and parse errors in source order.
	Diagnostics []*diag.Error
}

// Result aggregates a whole run.
type Result struct {
	// Files holds one outcome per input, in input order.
	Files []FileOutcome

	// TypeDiagnostics holds the typechecker's errors, in source-position
	// order per file.
	TypeDiagnostics []*diag.Error

	// ParseFailed is true when any file produced lex or parse errors; the
	// typechecker is not run in that case.
	ParseFailed bool

	// TypeFailed is true when typechecking reported errors.
	TypeFailed bool

	Stats Stats
}

// Stats carries the run counters the CLI logs.
type Stats struct {
	FilesProcessed   int
	TokensProduced   int
	DiagnosticsTotal int
}

// HadErrors reports whether any stage failed.
func (r *Result) HadErrors() bool {
	return r.ParseFailed || r.TypeFailed
}

// Diagnostics returns every diagnostic of the run: per-file lex/parse
// errors in input order, then type errors.
func (r *Result) Diagnostics() []*diag.Error {
	var all []*diag.Error

	for _, file := range r.Files {
		all = append(all, file.Diagnostics...)
	}

	return append(all, r.TypeDiagnostics...)
}

// SourceFor returns the source text for path, for diagnostic rendering.
func (r *Result) SourceFor(path string) (string, bool) {
	for _, file := range r.Files {
		if file.File.Path == path {
			return file.File.Text, true
		}
	}

	return "", false
}
