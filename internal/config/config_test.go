package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromFileLoadsNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "resolver:\n  default_limit: 25\ncache:\n  type: sqlite\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.GetViper().ConfigFileUsed())
	assert.Equal(t, 25, cfg.GetInt("resolver.default_limit"))
	assert.Equal(t, "sqlite", cfg.GetString("cache.type"))
	// Keys absent from the file keep their defaults
	assert.Equal(t, 2, cfg.GetInt("resolver.min_cached_recruiters"))
	assert.Equal(t, "0.0.0.0:8080", cfg.GetString("server.listen_address"))
}

func TestNewFromFileMissingFile(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
