package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, config.DefaultSocketURL, cfg.SocketURL)
}

func TestNew_EmptyDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	cfg, err := config.New("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, config.AppName), cfg.Dir)
}

func TestNew_FileOverridesURLs(t *testing.T) {
	dir := t.TempDir()
	yaml := "base_url: https://roster.example.com/api/v1/\nsocket_url: wss://roster.example.com/socket\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(yaml), 0600))

	cfg, err := config.New(dir)
	require.NoError(t, err)

	// Trailing slash is stripped so path joins stay predictable.
	assert.Equal(t, "https://roster.example.com/api/v1", cfg.BaseURL)
	assert.Equal(t, "wss://roster.example.com/socket", cfg.SocketURL)
}

func TestNew_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("base_url: http://other\n"), 0600))

	cfg, err := config.New(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://other", cfg.BaseURL)
	assert.Equal(t, config.DefaultSocketURL, cfg.SocketURL)
}

func TestNew_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte("{not yaml"), 0600))

	_, err := config.New(dir)
	assert.Error(t, err)
}

func TestConfig_Paths(t *testing.T) {
	cfg := &config.Config{Dir: "/tmp/roster"}

	assert.Equal(t, filepath.Join("/tmp/roster", config.ConfigFile), cfg.ConfigPath())
	assert.Equal(t, filepath.Join("/tmp/roster", config.TokenFile), cfg.TokenPath())
}

func TestConfig_HasToken(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Dir: dir}

	assert.False(t, cfg.HasToken())

	require.NoError(t, os.WriteFile(cfg.TokenPath(), []byte("abc"), 0600))
	assert.True(t, cfg.HasToken())
}

func TestConfig_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", config.AppName)
	cfg := &config.Config{Dir: dir}

	require.NoError(t, cfg.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}
