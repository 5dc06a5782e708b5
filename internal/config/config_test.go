package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/talentflow/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "talentflow.db", cfg.Store.Path)
	require.True(t, cfg.Mock.Enabled)
	require.Equal(t, 100, cfg.Mock.Jobs)
	require.Equal(t, 1200, cfg.Mock.Candidates)
	require.Equal(t, 10*time.Second, cfg.Poll.Interval)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TALENTFLOW_SERVER_PORT", "9090")
	t.Setenv("TALENTFLOW_STORE_PATH", "/tmp/tf.db")
	t.Setenv("TALENTFLOW_MOCK_ENABLED", "false")
	t.Setenv("TALENTFLOW_POLL_INTERVAL", "30s")
	t.Setenv("TALENTFLOW_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/tf.db", cfg.Store.Path)
	require.False(t, cfg.Mock.Enabled)
	require.Equal(t, 30*time.Second, cfg.Poll.Interval)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("TALENTFLOW_SERVER_PORT", "not-a-port")
	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7070
mock:
  jobs: 10
  candidates: 50
  seed: 42
api:
  base_url: http://upstream:9000/api
`), 0o644))
	t.Setenv("TALENTFLOW_CONFIG_PATH", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Server.Port)
	require.Equal(t, 10, cfg.Mock.Jobs)
	require.Equal(t, 50, cfg.Mock.Candidates)
	require.Equal(t, int64(42), cfg.Mock.Seed)
	require.Equal(t, "http://upstream:9000/api", cfg.BaseURL())
}

func TestBaseURL_DefaultsToOwnMock(t *testing.T) {
	cfg := config.Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	require.Equal(t, "http://127.0.0.1:8080/api", cfg.BaseURL())

	cfg.Server.Host = "example.internal"
	require.Equal(t, "http://example.internal:8080/api", cfg.BaseURL())
}
