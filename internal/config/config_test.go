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

	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, "60s", cfg.Defaults.BootTimeout)
	assert.Equal(t, "", cfg.Defaults.Filter)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("loads values from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "isim.yaml")
		content := `format: ndjson
quiet: true
defaults:
  boot_timeout: 2m
  filter: iphone
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.Equal(t, "2m", cfg.Defaults.BootTimeout)
		assert.Equal(t, "iphone", cfg.Defaults.Filter)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "isim.yaml")
		require.NoError(t, os.WriteFile(path, []byte("quiet: true\n"), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.True(t, cfg.Quiet)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, "60s", cfg.Defaults.BootTimeout)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Run("ISIM_ variables override", func(t *testing.T) {
		t.Setenv("ISIM_FORMAT", "ndjson")
		t.Setenv("ISIM_QUIET", "1")
		t.Setenv("ISIM_VERBOSE", "true")
		t.Setenv("ISIM_BOOT_TIMEOUT", "90s")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.Equal(t, "ndjson", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "90s", cfg.Defaults.BootTimeout)
	})

	t.Run("NO_COLOR is honored", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.True(t, cfg.NoColor)
	})

	t.Run("unset variables leave defaults alone", func(t *testing.T) {
		cfg := Default()
		applyEnvOverrides(cfg)

		assert.Equal(t, Default().Format, cfg.Format)
	})
}
