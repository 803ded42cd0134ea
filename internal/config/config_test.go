package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "salon"
password = "from-file"
dbname = "salon"

[logs]
level = "debug"

[metrics]
enabled = true

[admin]
username = "owner"
password_hash = "$2a$10$abcdefghijklmnopqrstuuOeTq3m5dG4cN5b8hP1JvUuKq8gW0xGy"
session_ttl_minutes = 30
cookie_hash_key = "0102030405060708090a0b0c0d0e0f10"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "owner", cfg.Admin.Username)
	assert.Equal(t, 30*time.Minute, cfg.Admin.SessionTTL())
	assert.Len(t, cfg.Admin.HashKey(), 16)
	assert.Empty(t, cfg.Admin.BlockKey())
	assert.Equal(t, "host=db port=5432 user=salon password=from-file dbname=salon sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_USERNAME", "manager")
	t.Setenv("SESSION_BLOCK_KEY", "00112233445566778899aabbccddeeff")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "manager", cfg.Admin.Username)
	assert.Len(t, cfg.Admin.BlockKey(), 16)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_BrokenToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no db name", func(c *Config) { c.Database.DBName = "" }},
		{"no password hash", func(c *Config) { c.Admin.PasswordHash = "" }},
		{"zero ttl", func(c *Config) { c.Admin.SessionTTLMinutes = 0 }},
		{"hash key not hex", func(c *Config) { c.Admin.CookieHashKey = "zz" }},
		{"block key wrong size", func(c *Config) { c.Admin.CookieBlockKey = "0102" }},
		{"metrics without path", func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Database.User = "salon"
			cfg.Database.DBName = "salon"
			cfg.Admin.PasswordHash = "hash"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
