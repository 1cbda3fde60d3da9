package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "public", cfg.Server.StaticDir)
	assert.Equal(t, "data/catalog.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.JWT.ExpireHours)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 8080
jwt:
  secret_key: "super-secret"
  expire_hours: 24
redis:
  addr: "localhost:6379"
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "super-secret", cfg.JWT.SecretKey)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	// untouched keys keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestAddr(t *testing.T) {
	t.Parallel()

	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: 9999}}
	assert.Equal(t, "127.0.0.1:9999", cfg.Addr())
}
