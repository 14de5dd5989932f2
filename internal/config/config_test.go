package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/screenfetch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCREENFETCH_CONFIG", "")

	cfg, err := config.Load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, config.FormatCompact, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.True(t, cfg.DPIQuirkRetry)
}

func TestLoadFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "screenfetch.toml")
	configContent := []byte(`
log_level = "debug"
format = "json"
color = "never"
dpi_quirk_retry = false
`)
	require.NoError(t, os.WriteFile(configPath, configContent, 0o600))
	t.Setenv("SCREENFETCH_CONFIG", configPath)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.False(t, cfg.DPIQuirkRetry)
}

func TestLoadPrecedence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "screenfetch.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: yaml\nlog_level: info\n"), 0o600))
	t.Setenv("SCREENFETCH_CONFIG", configPath)
	t.Setenv("SCREENFETCH_FORMAT", "detailed")
	t.Setenv("SCREENFETCH_LOG_LEVEL", "error")

	fs := config.Flags()
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, config.FormatDetailed, cfg.Format, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel, "flag overrides env")
}

func TestLoadFlags(t *testing.T) {
	t.Setenv("SCREENFETCH_CONFIG", "")

	fs := config.Flags()
	require.NoError(t, fs.Parse([]string{"-f", "YAML", "--color=always", "--dpi-quirk-retry=false"}))

	cfg, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, config.ColorAlways, cfg.Color)
	assert.False(t, cfg.DPIQuirkRetry)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Bad format", map[string]string{"SCREENFETCH_FORMAT": "xml"}},
		{"Bad log level", map[string]string{"SCREENFETCH_LOG_LEVEL": "verbose"}},
		{"Bad color", map[string]string{"SCREENFETCH_COLOR": "sometimes"}},
		{"Missing file", map[string]string{"SCREENFETCH_CONFIG": "/nonexistent/screenfetch.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCREENFETCH_CONFIG", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load(nil)
			assert.Error(t, err)
		})
	}
}
