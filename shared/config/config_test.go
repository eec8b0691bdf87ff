package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "nao-existe.json"))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.BackendURL = "http://10.0.0.2:9000"
	cfg.FollowStream = true
	cfg.WindowWidth = 800
	require.NoError(t, cfg.SaveTo(path))

	loaded := LoadFrom(path)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"target_fps": 30}`), 0644))

	cfg := LoadFrom(path)
	assert.Equal(t, int32(30), cfg.TargetFPS)
	assert.Equal(t, DefaultConfig().BackendURL, cfg.BackendURL)
}

func TestInvalidFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{quebrado`), 0644))

	assert.Equal(t, DefaultConfig(), LoadFrom(path))
}

func TestRequestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout())

	cfg.RequestTimeoutMs = 0
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout())
}
