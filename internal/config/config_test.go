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

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.True(t, cfg.Fallback.Enabled)
	assert.Equal(t, "Uncategorized", cfg.Fallback.PlaceholderCategory)
	assert.Equal(t, float64(10), cfg.Fallback.ValueStep)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_DefaultsValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aggregate.yaml")
	content := `
logging:
  level: debug
fallback:
  placeholder_category: Unknown
  value_step: 5
output:
  format: csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "Unknown", cfg.Fallback.PlaceholderCategory)
	assert.Equal(t, float64(5), cfg.Fallback.ValueStep)
	assert.Equal(t, "csv", cfg.Output.Format)
	// Untouched sections keep their defaults.
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aggregate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0644))

	t.Setenv("AGG_LOGGING_LEVEL", "error")
	t.Setenv("AGG_FALLBACK_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Logging.Level)
	assert.False(t, cfg.Fallback.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "bad log level",
			env:  map[string]string{"AGG_LOGGING_LEVEL": "verbose"},
		},
		{
			name: "bad output format",
			env:  map[string]string{"AGG_OUTPUT_FORMAT": "xml"},
		},
		{
			name: "empty placeholder category",
			env:  map[string]string{"AGG_FALLBACK_PLACEHOLDER_CATEGORY": ""},
		},
		{
			name: "file output without path",
			env: map[string]string{
				"AGG_LOGGING_OUTPUT":    "file",
				"AGG_LOGGING_FILE_PATH": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
