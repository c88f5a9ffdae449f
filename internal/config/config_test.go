package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/primer/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range config.Keys {
		unsetEnv(t, config.EnvPrefix+"_"+strings.ToUpper(k))
	}

	cfg, err := config.Load(config.Options{Dir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "dict.txt"), cfg.Dict)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.Stores)
}

func TestLoad_ProjectFile(t *testing.T) {
	unsetEnv(t, "PRIMER_SEED")
	unsetEnv(t, "PRIMER_STORES")
	dir := t.TempDir()
	writeFile(t, dir, ".primer.yaml", "seed: 42\nstores: shops.yaml\n")

	cfg, err := config.Load(config.Options{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "shops.yaml", cfg.Stores)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := config.Load(config.Options{File: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

// TestLoad_EnvOverridesFile checks that PRIMER_* variables beat the file.
func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "custom.yaml", "seed: 42\ncolor: true\n")
	t.Setenv("PRIMER_SEED", "7")
	t.Setenv("PRIMER_COLOR", "false")

	cfg, err := config.Load(config.Options{File: file, Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.False(t, cfg.Color)
}

func TestLoad_DotEnv(t *testing.T) {
	unsetEnv(t, "PRIMER_INPUT")
	dir := t.TempDir()
	writeFile(t, dir, ".env", "PRIMER_INPUT=from-dotenv.txt\n")

	cfg, err := config.Load(config.Options{Dir: dir})
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv.txt", cfg.Input)
}

// TestLoad_FlagsWin verifies that a flag the user passed overrides the
// environment, while an untouched flag does not shadow the default.
func TestLoad_FlagsWin(t *testing.T) {
	unsetEnv(t, "PRIMER_DICT")
	t.Setenv("PRIMER_SEED", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Uint64("seed", 0, "")
	fs.String("dict", "", "")
	require.NoError(t, fs.Parse([]string{"--seed", "99"}))

	cfg, err := config.Load(config.Options{Dir: t.TempDir(), Flags: fs})
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, filepath.Join("testdata", "dict.txt"), cfg.Dict)
}
