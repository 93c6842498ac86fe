package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"livecast/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 500, cfg.Server.BodyLimitMB)
	assert.Equal(t, "assets", cfg.Server.AssetsDir)
	assert.Equal(t, "disk", cfg.Storage.Driver)
	assert.Equal(t, "templates", cfg.Storage.Directory)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, 64, cfg.Broadcast.QueueSize)
	assert.True(t, cfg.Broadcast.EvictOnDisconnect)
	assert.Equal(t, "random", cfg.Geo.Provider)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("BROADCAST_EVICT_ON_DISCONNECT", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.False(t, cfg.Broadcast.EvictOnDisconnect)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	env := "LOG_FORMAT=console\nDATABASE_DRIVER=sqlite\nDATABASE_NAME=visits.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("DATABASE_DRIVER")
		os.Unsetenv("DATABASE_NAME")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "visits.db", cfg.Database.Name)
	assert.True(t, cfg.Database.Enabled())
}
