package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, 1280, cfg.Field.Width)
	assert.Equal(t, 800, cfg.Field.Height)
	assert.Equal(t, 320.0, cfg.Field.InteractionRadius)
	assert.Equal(t, 200, cfg.Field.DebounceMS)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nebula.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logger:
  level: debug
  format: json
field:
  width: 640
  interaction_radius: 150
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 640, cfg.Field.Width)
	assert.Equal(t, 150.0, cfg.Field.InteractionRadius)
	// Untouched keys keep defaults
	assert.Equal(t, 800, cfg.Field.Height)
	assert.Equal(t, 200, cfg.Field.DebounceMS)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nebula.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml:::"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
