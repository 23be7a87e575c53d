// Package configloader resolves the compiler's default options from a
// project config file and the environment.
//
// Precedence (highest to lowest): CLI flags (applied by the caller),
// CASCADEC_* environment variables, the nearest .cascadec.yaml found by
// walking upward from the working directory, built-in defaults.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project config file searched for upward from the
// working directory.
const ConfigFileName = ".cascadec.yaml"

// Config holds the tool defaults a project can pin down. Zero values mean
// "not set" and fall through to the built-in defaults.
type Config struct {
	// Debug enables debug logging, like -d.
	Debug bool `yaml:"debug"`

	// Color is the output color mode: auto, always or never.
	Color string `yaml:"color"`

	// Emit is the default output form: llvm-ir, llvm-bc, asm, obj or exe.
	Emit string `yaml:"emit"`

	// Optimize is the default optimization level, 0 through 3.
	Optimize int `yaml:"optimize"`

	// Output is the default output path.
	Output string `yaml:"output"`

	// Target is the default target triple.
	Target string `yaml:"target"`

	// Jobs caps the per-file worker pool; 0 means one per CPU.
	Jobs int `yaml:"jobs"`
}

// EmitForms returns the output forms -e/--emit accepts, in display order.
func EmitForms() []string {
	return []string{"llvm-ir", "llvm-bc", "asm", "obj", "exe"}
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Color:    "auto",
		Emit:     "llvm-ir",
		Optimize: 0,
		Output:   defaultOutput(),
	}
}

// LoadOptions controls config resolution.
type LoadOptions struct {
	// WorkingDir is the directory the upward search starts from. Empty
	// means the process working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path; when set, discovery
	// is skipped and a missing file is an error.
	ExplicitPath string

	// IgnoreEnv skips the CASCADEC_* environment overrides.
	IgnoreEnv bool
}

// Load resolves the final configuration.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func configPath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}

		return opts.ExplicitPath, nil
	}

	dir := opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil
		}

		dir = wd
	}

	// walk upward until the filesystem root
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg.validate(path)
}

// Validate checks the enumerated fields; the CLI calls it again after
// overlaying flag values.
func (c *Config) Validate() error {
	return c.validate("options")
}

func (c *Config) validate(path string) error {
	var errs []error

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("color must be auto, always or never, got %q", c.Color))
	}

	if c.Emit != "" && !slices.Contains(EmitForms(), c.Emit) {
		errs = append(errs, fmt.Errorf("emit must be one of %s, got %q",
			strings.Join(EmitForms(), ", "), c.Emit))
	}

	if c.Optimize < 0 || c.Optimize > 3 {
		errs = append(errs, fmt.Errorf("optimize must be 0 through 3, got %d", c.Optimize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config %s: %w", path, errors.Join(errs...))
	}

	return nil
}

func defaultOutput() string {
	if runtime.GOOS == "windows" {
		return "main.exe"
	}

	return "main"
}
