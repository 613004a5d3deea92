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
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, OutputTable, cfg.Output.DefaultFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(dir, "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
output:
  default_format: json
`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format, "unset fields keep their defaults")
		assert.Equal(t, OutputJSON, cfg.Output.DefaultFormat)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging: [not a map"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("unknown output format is rejected", func(t *testing.T) {
		path := filepath.Join(dir, "badformat.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  default_format: xml\n"), 0600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})
}
