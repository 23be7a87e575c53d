package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanacox/cascade/internal/configloader"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, configloader.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
	})

	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "llvm-ir", cfg.Emit)
	assert.Equal(t, 0, cfg.Optimize)
}

func TestLoad_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "debug: true\nemit: asm\noptimize: 2\n")

	cfg, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})

	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "asm", cfg.Emit)
	assert.Equal(t, 2, cfg.Optimize)

	// Untouched keys keep their defaults.
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoad_UpwardSearch(t *testing.T) {
	parent := t.TempDir()
	writeConfig(t, parent, "emit: obj\n")

	nested := filepath.Join(parent, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, "obj", cfg.Emit)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yaml"),
		IgnoreEnv:    true,
	})

	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "emit: wasm\n")

	_, err := configloader.Load(configloader.LoadOptions{
		WorkingDir: dir,
		IgnoreEnv:  true,
	})

	assert.ErrorContains(t, err, "emit")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "emit: asm\n")

	t.Setenv("CASCADEC_EMIT", "exe")
	t.Setenv("CASCADEC_OPTIMIZE", "3")
	t.Setenv("CASCADEC_DEBUG", "true")

	cfg, err := configloader.Load(configloader.LoadOptions{WorkingDir: dir})

	require.NoError(t, err)
	assert.Equal(t, "exe", cfg.Emit)
	assert.Equal(t, 3, cfg.Optimize)
	assert.True(t, cfg.Debug)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("CASCADEC_JOBS", "many")

	_, err := configloader.Load(configloader.LoadOptions{WorkingDir: t.TempDir()})

	assert.ErrorContains(t, err, "CASCADEC_JOBS")
}
