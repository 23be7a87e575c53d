package compiler

import (
	"context"
	"fmt"
	"sync"

	"github.com/evanacox/cascade/internal/logging"
	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/diag"
	"github.com/evanacox/cascade/pkg/lexer"
	"github.com/evanacox/cascade/pkg/parser"
	"github.com/evanacox/cascade/pkg/sema"
	"github.com/evanacox/cascade/pkg/source"
)

// Compile runs the front-end over files. Lexing and parsing are per-file
// and independent, so they fan out over a bounded worker pool; outcomes are
// re-ordered to input order before anything is reported, which keeps
// diagnostics deterministic. Typechecking is a single pass across all
// programs and only runs when every file parsed without errors.
func Compile(ctx context.Context, files []*source.File, opts Options) (*Result, error) {
	result := &Result{Files: make([]FileOutcome, len(files))}

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.effectiveJobs(len(files))

	parseCtx := logging.WithStage(ctx, "parse")
	logging.FromContext(parseCtx).Debug("compiling",
		logging.FieldFiles, len(files), logging.FieldJobs, jobs)

	workCh := make(chan int)
	var wg sync.WaitGroup

	for j := 0; j < jobs; j++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range workCh {
				result.Files[i] = compileFile(files[i])
			}
		}()
	}

	// Feed indexes; workers write to distinct slots, so no collection
	// channel is needed to keep the output in input order.
feed:
	for i := range files {
		select {
		case <-ctx.Done():
			break feed
		case workCh <- i:
		}
	}

	close(workCh)
	wg.Wait()

	if ctx.Err() != nil {
		return result, fmt.Errorf("compile cancelled: %w", ctx.Err())
	}

	programs := make([]*ast.Program, 0, len(files))

	for _, outcome := range result.Files {
		result.Stats.FilesProcessed++
		result.Stats.TokensProduced += len(outcome.Tokens)
		result.Stats.DiagnosticsTotal += len(outcome.Diagnostics)

		if len(outcome.Diagnostics) > 0 {
			result.ParseFailed = true
		}

		programs = append(programs, outcome.Program)
	}

	// A failed parse stops the pipeline; the typechecker never sees a
	// tree that is known to be incomplete.
	if result.ParseFailed {
		return result, nil
	}

	logging.FromContext(logging.WithStage(ctx, "typecheck")).Debug("typechecking",
		logging.FieldFiles, len(programs))

	sink := diag.NewQueue()
	result.TypeFailed = sema.Check(programs, sink)

	result.TypeDiagnostics = sink.Drain()
	diag.SortBySpan(result.TypeDiagnostics)
	result.Stats.DiagnosticsTotal += len(result.TypeDiagnostics)

	return result, nil
}

// compileFile runs the per-file stages: lex, then parse over the tokens.
// Each file gets its own sink, so diagnostics stay in source order within
// the file no matter which worker ran it.
func compileFile(file *source.File) FileOutcome {
	sink := diag.NewQueue()

	tokens := lexer.Lex(file.Text, file.Path, sink)
	program := parser.Parse(tokens, file.Path, sink)

	errs := sink.Drain()
	diag.SortBySpan(errs)

	return FileOutcome{
		File:        file,
		Tokens:      tokens,
		Program:     program,
		Diagnostics: errs,
	}
}
