package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "madrasa.db", cfg.DatabasePath)
	assert.Equal(t, UploadDriverLocal, cfg.UploadDriver)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, 512, cfg.CacheMaxEntries)
	assert.False(t, cfg.NotifyEnabled())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	file := filepath.Join(dir, "madrasa.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  listen_addr: \":9000\"\ndatabase:\n  path: from-file.db\nnotify:\n  to: \"a@x.org, b@x.org\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MADRASA_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("MADRASA_DATABASE_PATH", "from-env.db")
	t.Setenv("MADRASA_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "from-env.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel, ".env never overrides the real environment")
	assert.Equal(t, []string{"a@x.org", "b@x.org"}, cfg.NotifyTo)
}

func TestLoadRemoteDriverNeedsEndpoint(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MADRASA_UPLOAD_DRIVER", "remote")

	_, err := Load("")
	require.Error(t, err)

	t.Setenv("MADRASA_UPLOAD_ENDPOINT", "https://files.example.com/upload")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, UploadDriverRemote, cfg.UploadDriver)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load("nope.yaml")
	assert.Error(t, err)
}
