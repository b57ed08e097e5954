package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"taskify-server"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Address)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.False(t, cfg.VerboseErrors)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, "-a", ":9090", "-s", "flag-secret", "-t", "30", "-o", "https://app.example.com")

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("TASKIFY_ADDRESS", ":7070")
	t.Setenv("TASKIFY_SECRET_KEY", "env-secret")
	t.Setenv("TASKIFY_VERBOSE_ERRORS", "true")

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.Address)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.True(t, cfg.VerboseErrors)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")

	raw, err := json.Marshal(map[string]any{
		"address":                 ":6060",
		"secret_key":              "json-secret",
		"token_validity_duration": "48h",
		"allowed_origins":         "https://a.example.com,https://b.example.com",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.Address)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 48*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"address": ":6060"}`), 0o600))

	resetArgs(t, "-c", path, "-a", ":5050")

	cfg := LoadConfig()

	assert.Equal(t, ":5050", cfg.Address)
}
