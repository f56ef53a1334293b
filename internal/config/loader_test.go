package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), cfg)
	assert.NotEmpty(t, cfg.Catalog.TokenVerifyURL)
	assert.NotEmpty(t, cfg.Catalog.BasicCredential)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
catalog:
  tokenVerifyURL: https://staging.example.com/oauth/verify
  chunkBaseURL: https://cdn.staging.example.com/chunks/
cache:
  manifestDir: /tmp/manifests
logLevel: debug
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), content, 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com/oauth/verify", cfg.Catalog.TokenVerifyURL)
	assert.Equal(t, "https://cdn.staging.example.com/chunks/", cfg.Catalog.ChunkBaseURL)
	assert.Equal(t, "/tmp/manifests", cfg.Cache.ManifestDir)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Fields absent from the file keep their defaults.
	assert.Equal(t, GetDefaultConfig().Catalog.TokenIssueURL, cfg.Catalog.TokenIssueURL)
	assert.Equal(t, GetDefaultConfig().Cache.ChunkDir, cfg.Cache.ChunkDir)
}

func TestLoadConfig_MalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("catalog: ["), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
