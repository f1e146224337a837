package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the duration of the test so no stray .env or
// gymtrack.yaml from the working tree leaks in.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "./gym.db", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GYMTRACK_DB_PATH", "/var/lib/gym/gym.db")
	t.Setenv("GYMTRACK_LOG_LEVEL", "debug")
	t.Setenv("GYMTRACK_WRITE_RATE_BURST", "7")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/gym/gym.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 7, cfg.WriteRateBurst)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/other.db\nhttp_addr: \":9090\"\n"), 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Load(New(), "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.Error(t, Config{DBPath: " ", WriteRateLimit: 1, WriteRateBurst: 1}.Validate())
	assert.Error(t, Config{DBPath: "gym.db", WriteRateLimit: 0, WriteRateBurst: 1}.Validate())
	assert.NoError(t, Config{DBPath: "gym.db", WriteRateLimit: 1, WriteRateBurst: 1}.Validate())
}
