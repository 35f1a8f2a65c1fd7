package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	// An explicit path that does not exist is an error.
	require.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.API.TimeoutSeconds)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Equal(t, "admin", cfg.Auth.AdminAlias)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Logging.Dir)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
api:
  url: https://example.test/functions/v1/search
  key: service-key
  timeout_seconds: 5
ui:
  theme: dark
auth:
  admin_alias: root
  workspaces:
    cogp: ws-cogp
    bluepoint: ws-bp
  passwords:
    cogp: secret
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/functions/v1/search", cfg.API.URL)
	assert.Equal(t, "service-key", cfg.API.Key)
	assert.Equal(t, 5, cfg.API.TimeoutSeconds)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "root", cfg.Auth.AdminAlias)
	assert.Equal(t, "ws-cogp", cfg.Auth.Workspaces["cogp"])
	assert.Equal(t, "secret", cfg.Auth.Passwords["cogp"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  url: https://file.test\n"), 0o644))

	t.Setenv("LATTICE_API_URL", "https://env.test")
	t.Setenv("LATTICE_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.test", cfg.API.URL)
	assert.Equal(t, "env-key", cfg.API.Key)
}

func TestValidate_MissingFields(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.API.URL = "https://example.test"
	require.Error(t, cfg.Validate())

	cfg.API.Key = "key"
	require.NoError(t, cfg.Validate())
}

func TestAPIConfigTimeout(t *testing.T) {
	a := APIConfig{TimeoutSeconds: 30}
	assert.Equal(t, "30s", a.Timeout().String())
}
