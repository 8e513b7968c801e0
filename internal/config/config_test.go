package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_File(t *testing.T) {
	data := filepath.Join(t.TempDir(), "datasets")
	dir := writeConfig(t, `
server:
  port: "9090"
  mode: release
database:
  driver: postgres
  host: db
  port: 5432
  dbname: learnpath
redis:
  cache_ttl: 30s
storage:
  type: local
  local_path: `+data+`
cors:
  allowed_origins: [http://a.example, http://b.example]
review:
  default_locale: en
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.ExposeErrors, "release hides errors by default")
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "en", cfg.Review.DefaultLocale)
	assert.Equal(t, 6000, cfg.RateLimit.MaxRequests)
	assert.DirExists(t, data)
}

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("DATABASE_HOST", "mysql.internal")
	t.Setenv("SERVER_MODE", "debug")
	t.Setenv("STORAGE_LOCAL_PATH", t.TempDir())

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "mysql.internal", cfg.Database.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.ExposeErrors)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "id", cfg.Review.DefaultLocale)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"driver", "database:\n  driver: oracle\n"},
		{"storage", "storage:\n  type: ftp\n"},
		{"rate limit", "rate_limit:\n  max_requests: 0\nstorage:\n  local_path: " + t.TempDir() + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
