package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "focuswave.db", cfg.Database.Path)
	assert.Equal(t, 25, cfg.Timer.WorkMinutes)
	assert.Equal(t, 24*time.Hour, cfg.TokenLifetime())
}

func TestLoad_ParsesYAMLWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "sekrit")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
  jwt_secret: "${TEST_JWT_SECRET}"
  token_ttl: "2h"
database:
  path: "/tmp/focus.db"
timer:
  work_minutes: 50
  short_break_minutes: 10
  long_break_minutes: 20
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "sekrit", cfg.Server.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenLifetime())
	assert.Equal(t, "/tmp/focus.db", cfg.Database.Path)
	assert.Equal(t, 50, cfg.Timer.WorkMinutes)
}

func TestLoad_EnvOverridesWinOverFile(t *testing.T) {
	t.Setenv("FOCUSWAVE_ADDR", ":7070")
	t.Setenv("FOCUSWAVE_DB_PATH", "/tmp/override.db")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
