package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.env"), []byte(contents), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "block", cfg.SavePolicy)
	assert.Equal(t, "default", cfg.DefaultDeviceID)
	assert.Equal(t, 5*time.Minute, cfg.SearchCacheTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.TypeaheadDelay)
}

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := writeConfigFile(t, `SERVER_ADDRESS=127.0.0.1:9090
UPSTREAM_BASE_URL=https://api.example.test
UPSTREAM_TIMEOUT=3s
SAVE_POLICY=tolerate
TYPEAHEAD_DELAY=150ms
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress)
	assert.Equal(t, "https://api.example.test", cfg.UpstreamBaseURL)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "tolerate", cfg.SavePolicy)
	assert.Equal(t, 150*time.Millisecond, cfg.TypeaheadDelay)
	// Unset keys keep their defaults.
	assert.Equal(t, "default", cfg.DefaultDeviceID)
}

func TestLoadConfig_InvalidSavePolicy(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := writeConfigFile(t, "SAVE_POLICY=maybe\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SAVE_POLICY")
}
