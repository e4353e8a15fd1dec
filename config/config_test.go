package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Javier162380/abn-amro-mcp/config"
)

func Test_Load(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Upstream.BaseURL)

	file := filepath.Join(t.TempDir(), "server.yaml")
	err = os.WriteFile(file, []byte("upstream:\n  base_url: http://localhost:8080\n"), 0644)
	require.NoError(t, err)

	cfg, err = config.Load(file)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.Upstream.BaseURL)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
