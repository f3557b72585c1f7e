package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dbshift/dbshift/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.Limits.MaxPathLength)
	assert.Nil(t, cfg.Log.Level)
	assert.Equal(t, config.DefaultMaxPathLength, cfg.MaxPathLength())
	assert.Equal(t, config.DefaultMaxPathMatches, cfg.MaxPathMatches())
}

func TestLoad_FullConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "dbshift")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
[limits]
max_path_length = 4096
max_path_matches = 128

[log]
level = "debug"
file = "/var/log/dbshift.json"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.MaxPathLength())
	assert.Equal(t, 128, cfg.MaxPathMatches())

	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, "debug", *cfg.Log.Level)

	require.NotNil(t, cfg.Log.File)
	assert.Equal(t, "/var/log/dbshift.json", *cfg.Log.File)
}

func TestLoad_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "dbshift")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
[limits]
max_path_matches = 8
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxPathMatches())
	// Unset fields fall back to defaults.
	assert.Equal(t, config.DefaultMaxPathLength, cfg.MaxPathLength())
	assert.Nil(t, cfg.Log.Level)
}

func TestLoad_NonsensicalLimits(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "dbshift")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `
[limits]
max_path_length = -1
max_path_matches = 0
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMaxPathLength, cfg.MaxPathLength())
	assert.Equal(t, config.DefaultMaxPathMatches, cfg.MaxPathMatches())
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "dbshift")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("invalid [[["), 0o644))

	_, err := config.Load()
	assert.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/dbshift/config.toml", config.ConfigPath())
}
