package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "revo", cfg.Storage.Bucket)
	assert.Equal(t, "webpack-stats.json", cfg.Assets.StatsFile)
	assert.Equal(t, `.+\.hot-update\.js,.+\.map`, cfg.Assets.Ignore)
	assert.True(t, cfg.Assets.Cache)
	assert.Equal(t, 200, cfg.Export.MaxColumns)
	assert.Equal(t, "exports/", cfg.Export.UploadPrefix)
	assert.Empty(t, cfg.Crypto.Key)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("ASSETS_CACHE", "false")
	t.Setenv("EXPORT_MAX_COLUMNS", "50")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Assets.Cache)
	assert.Equal(t, 50, cfg.Export.MaxColumns)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CRYPTO_KEY=abc\nLOG_FORMAT=console\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CRYPTO_KEY")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Crypto.Key)
	assert.Equal(t, "console", cfg.Log.Format)
}
