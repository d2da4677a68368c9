package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAPIURL(t *testing.T) {
	t.Setenv("MOMENTUM_API_URL", "")
	t.Setenv("MOMENTUM_API_KEY", "")
	t.Setenv("MOMENTUM_DATA_DIR", t.TempDir())

	_, err := Load()
	require.Error(t, err)
}

func TestLoadBuildsPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOMENTUM_API_URL", "https://proj.example.co")
	t.Setenv("MOMENTUM_API_KEY", "anon-key")
	t.Setenv("MOMENTUM_DATA_DIR", filepath.Join(dir, "nested"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://proj.example.co", cfg.APIURL)
	assert.Equal(t, "anon-key", cfg.APIKey)
	assert.Equal(t, filepath.Join(cfg.DataDir, "momentum.db"), cfg.QueueDBPath())
	assert.Equal(t, filepath.Join(cfg.DataDir, "mirror.db"), cfg.MirrorDBPath())
	assert.DirExists(t, cfg.DataDir)
}
