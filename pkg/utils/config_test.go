package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "flickdeck", cfg.App.Name)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "logs/", cfg.App.LogPath)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	env := "APP_NAME=deck-dev\nDEBUG=true\nAPI_TIMEOUT_SECONDS=3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))
	t.Chdir(dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "deck-dev", cfg.App.Name)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 3, cfg.API.TimeoutSeconds)
	// Keys the file does not mention keep their defaults.
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
}
