package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader(viper.New()).Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Lines:     10,
		Format:    FormatText,
		LogFormat: FormatText,
	}, cfg)
}

func TestLoadSources(t *testing.T) {
	t.Run("Config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ringtail.yaml")
		require.NoError(t, os.WriteFile(path, []byte("lines: 3\nformat: yaml\nnumber: true\n"), 0600))

		cfg, err := NewLoader(viper.New(), WithConfigFile(path)).Load()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Lines)
		assert.Equal(t, FormatYAML, cfg.Format)
		assert.True(t, cfg.Number)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("RINGTAIL_LINES", "5")
		t.Setenv("RINGTAIL_LOG_FORMAT", "json")

		cfg, err := NewLoader(viper.New()).Load()
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Lines)
		assert.Equal(t, FormatJSON, cfg.LogFormat)
	})

	t.Run("Explicit values win", func(t *testing.T) {
		t.Setenv("RINGTAIL_LINES", "5")
		v := viper.New()
		v.Set("lines", 7)

		cfg, err := NewLoader(v).Load()
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Lines)
	})

	t.Run("Missing config file", func(t *testing.T) {
		_, err := NewLoader(viper.New(), WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestValidate(t *testing.T) {
	valid := Config{Lines: 1, Format: FormatText, LogFormat: FormatText}
	require.NoError(t, valid.Validate())

	for _, tc := range []struct {
		name   string
		modify func(*Config)
	}{
		{"Zero lines", func(c *Config) { c.Lines = 0 }},
		{"Negative lines", func(c *Config) { c.Lines = -2 }},
		{"Unknown format", func(c *Config) { c.Format = "xml" }},
		{"Unknown log format", func(c *Config) { c.LogFormat = "yaml" }},
		{"Sort with reverse", func(c *Config) { c.Sort, c.Reverse = true, true }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
