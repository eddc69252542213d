package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServerConfig_Defaults(t *testing.T) {
	cfg, err := LoadServerConfig(noEnv)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, []string{"http://localhost:4100", "http://localhost:1337"}, cfg.CORSOrigins)
	assert.Contains(t, cfg.CORSMethods, "POST")
}

func TestLoadServerConfig_Overrides(t *testing.T) {
	cfg, err := LoadServerConfig(map[string]string{
		"AIOF_PORT":         "8080",
		"AIOF_LOG_LEVEL":    "debug",
		"AIOF_LOG_FORMAT":   "json",
		"AIOF_CORS_ORIGINS": "https://aiof.example",
	})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"https://aiof.example"}, cfg.CORSOrigins)
}

func TestLoadServerConfig_Invalid(t *testing.T) {
	_, err := LoadServerConfig(map[string]string{"AIOF_PORT": "not-a-port"})
	assert.Error(t, err)

	_, err = LoadServerConfig(map[string]string{"AIOF_PORT": "70000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port must be between")
}
