package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanacox/cascade/internal/logging"
	"github.com/evanacox/cascade/internal/ui/pretty"
	"github.com/evanacox/cascade/pkg/ast"
	"github.com/evanacox/cascade/pkg/compiler"
	"github.com/evanacox/cascade/pkg/source"
)

// Stage-failure sentinels. They carry no message of their own: the
// diagnostics were already rendered by the time one is returned, and the
// error only exists to select the exit code.
var (
	// ErrBadArguments marks invalid flag values.
	ErrBadArguments = errors.New("invalid arguments")

	// ErrReadFailed marks an unreadable source file.
	ErrReadFailed = errors.New("reading source failed")

	// ErrParseFailed marks lex or parse errors.
	ErrParseFailed = errors.New("parse errors present")

	// ErrTypeFailed marks typecheck errors.
	ErrTypeFailed = errors.New("type errors present")
)

type compileFlags struct {
	debug      bool
	optimize   int
	emit       string
	output     string
	target     string
	color      string
	configPath string
	jobs       int
}

func runCompile(cmd *cobra.Command, args []string, opts *compileFlags) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadArguments, err)
	}

	logger := logging.Default()
	logger.Debug("options",
		logging.FieldEmit, cfg.Emit,
		logging.FieldOptimize, cfg.Optimize,
		logging.FieldTarget, cfg.Target,
		logging.FieldOutput, cfg.Output)

	files, err := readSources(args)
	if err != nil {
		logger.Error("reading source failed", logging.FieldError, err)
		return ErrReadFailed
	}

	ctx := logging.WithLogger(cmd.Context(), logger)

	result, err := compiler.Compile(ctx, files, compiler.Options{Jobs: cfg.Jobs})
	if err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout()))
	renderer := pretty.NewRenderer(styles)

	sources := make(map[string]string, len(result.Files))
	for _, outcome := range result.Files {
		sources[outcome.File.Path] = outcome.File.Text
	}

	renderer.RenderAll(cmd.OutOrStdout(), result.Diagnostics(), sources)

	if result.HadErrors() {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))
	}

	if cfg.Debug {
		for _, outcome := range result.Files {
			logger.Debug("parsed", logging.FieldPath, outcome.File.Path,
				logging.FieldTokensProduced, len(outcome.Tokens))
			fmt.Fprintln(os.Stderr, ast.Dump(outcome.Program))
		}
	}

	if result.ParseFailed {
		return ErrParseFailed
	}

	if result.TypeFailed {
		return ErrTypeFailed
	}

	// Success is silent; the back end is not implemented, so a clean
	// front-end run is where the pipeline ends.
	logger.Debug("front-end finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldTokensProduced, result.Stats.TokensProduced)

	return nil
}

// readSources loads every path argument, or standard input when there are
// no arguments.
func readSources(paths []string) ([]*source.File, error) {
	if len(paths) == 0 {
		file, err := source.ReadStdin(os.Stdin)
		if err != nil {
			return nil, err
		}

		return []*source.File{file}, nil
	}

	files := make([]*source.File, 0, len(paths))

	for _, path := range paths {
		file, err := source.Read(path)
		if err != nil {
			return nil, err
		}

		files = append(files, file)
	}

	return files, nil
}
