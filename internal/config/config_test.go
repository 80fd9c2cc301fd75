package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/h3core/pkg/coordijk"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Vectors.Radius)
	assert.Equal(t, []string{"standard", "rotated"}, cfg.Vectors.Orientations)
	assert.Equal(t, FormatYAML, cfg.Vectors.Format)
	assert.Equal(t, "-", cfg.Vectors.Output)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, Default(), cfg)
}

func TestParseOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
vectors:
  radius: 4
  orientations: [rotated, rotated]
  format: text
  output: out.txt
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Vectors.Radius)
	assert.Equal(t, FormatText, cfg.Vectors.Format)
	assert.Equal(t, "out.txt", cfg.Vectors.Output)
	assert.Equal(t, "debug", cfg.Log.Level)

	got, err := cfg.Vectors.ParsedOrientations()
	require.NoError(t, err)
	assert.Equal(t, []coordijk.Orientation{coordijk.Rotated}, got)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"radius":      "vectors: {radius: -1}",
		"orientation": "vectors: {orientations: [sideways]}",
		"format":      "vectors: {format: xml}",
		"log level":   "log: {level: loud}",
		"syntax":      "vectors: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
