// Package cli provides the Cobra command structure for cascadec.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evanacox/cascade/internal/configloader"
	"github.com/evanacox/cascade/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cascadec command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &compileFlags{}

	rootCmd := &cobra.Command{
		Use:   "cascadec [options] file...",
		Short: "Compiler for the Cascade language",
		Long: `cascadec compiles Cascade source files.

Source files are lexed, parsed and typechecked; diagnostics are printed
with their source excerpt. With no file arguments, one source is read from
standard input.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging and dump the parsed tree to stderr")
	flags.IntVarP(&opts.optimize, "optimize", "O", 0, "optimization levels: 0, 1, 2, 3")
	flags.StringVarP(&opts.emit, "emit", "e", "llvm-ir",
		"what the compiler should output: llvm-ir|llvm-bc|asm|obj|exe")
	flags.StringVarP(&opts.output, "output", "o", "", "file to put the output in")
	flags.StringVarP(&opts.target, "target", "t", "", "the target triple to output for")
	flags.StringVar(&opts.color, "color", "auto", "colorize output: auto, always, never")
	flags.StringVar(&opts.configPath, "config", "", "path to config file")
	flags.IntVar(&opts.jobs, "jobs", 0, "maximum concurrent file workers (0 = auto)")

	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// resolveConfig merges the project config with the flags the user actually
// set; an explicitly-passed flag always wins.
func resolveConfig(cmd *cobra.Command, opts *compileFlags) (*configloader.Config, error) {
	cfg, err := configloader.Load(configloader.LoadOptions{ExplicitPath: opts.configPath})
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}

	if flags.Changed("optimize") {
		cfg.Optimize = opts.optimize
	}

	if flags.Changed("emit") {
		cfg.Emit = opts.emit
	}

	if flags.Changed("output") {
		cfg.Output = opts.output
	}

	if flags.Changed("target") {
		cfg.Target = opts.target
	}

	if flags.Changed("color") {
		cfg.Color = opts.color
	}

	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.SetDebug(cfg.Debug)

	return cfg, nil
}

// Execute runs the CLI and returns the process exit code.
func Execute(info BuildInfo) int {
	rootCmd := NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !isStageFailure(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return ExitCode(err)
}
