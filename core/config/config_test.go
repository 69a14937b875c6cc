package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"maulepro-server/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, "", cfg.Server.Root)
	assert.Equal(t, "index.html", cfg.Server.Index)
	assert.True(t, cfg.Server.Browse)
	assert.True(t, cfg.Server.OpenBrowser)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("SERVER_OPEN_BROWSER", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	assert.False(t, cfg.Server.OpenBrowser)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_ROOT=/srv/portal\nSERVER_BROWSE=false\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SERVER_ROOT")
		os.Unsetenv("SERVER_BROWSE")
	})

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/portal", cfg.Server.Root)
	assert.False(t, cfg.Server.Browse)
}

func TestLoadConfig_BadValue(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")

	_, err := config.LoadConfig(t.TempDir())
	assert.Error(t, err)
}
