package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
app:
  port: 8080
  gin_mode: debug
database:
  dsn: "host=localhost user=spa dbname=spa sslmode=disable"
redis:
  addr: "localhost:6379"
  db: 1
session:
  secret: "file-secret"
  issuer: "sahasrara"
  ttl: "30m"
  remember_ttl: "720h"
lockout:
  max_attempts: 5
  window: "15m"
seed:
  default_pin: "1234"
`

func writeTestConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)
}

func TestLoad(t *testing.T) {
	writeTestConfig(t, testYAML)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 1, cfg.RedisDB)
	assert.Equal(t, "file-secret", cfg.SessionSecret)
	assert.Equal(t, "sahasrara", cfg.SessionIssuer)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 720*time.Hour, cfg.RememberTTL)
	assert.Equal(t, 5, cfg.LockoutMaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LockoutWindow)
	assert.Equal(t, "1234", cfg.DefaultPIN)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_EnvOverrides(t *testing.T) {
	writeTestConfig(t, testYAML)
	t.Setenv("GIN_MODE", "release")
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SAHASRARA_PIN", "4321")
	t.Setenv("DATABASE_DSN", "host=db user=spa dbname=spa")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "env-secret", cfg.SessionSecret)
	assert.Equal(t, "4321", cfg.DefaultPIN)
	assert.Equal(t, "host=db user=spa dbname=spa", cfg.DSN)
	assert.True(t, cfg.CookieSecure, "release mode marks the cookie Secure")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadTTL(t *testing.T) {
	writeTestConfig(t, `
app:
  port: 8080
session:
  ttl: "thirty minutes"
  remember_ttl: "720h"
lockout:
  window: "15m"
`)

	_, err := Load()
	assert.Error(t, err)
}
