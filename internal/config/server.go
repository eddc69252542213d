package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP service
type ServerConfig struct {
	Port        int      `env:"AIOF_PORT"         envDefault:"5000"`
	LogLevel    string   `env:"AIOF_LOG_LEVEL"    envDefault:"info"`
	LogFormat   string   `env:"AIOF_LOG_FORMAT"   envDefault:"text"`
	CORSOrigins []string `env:"AIOF_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:4100,http://localhost:1337"`
	CORSMethods []string `env:"AIOF_CORS_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	CORSHeaders []string `env:"AIOF_CORS_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
}

// Addr returns the listen address
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadServerConfig parses the server settings from environment, or from the
// process environment when environ is nil
func LoadServerConfig(environ map[string]string) (ServerConfig, error) {
	cfg, err := env.ParseAsWithOptions[ServerConfig](env.Options{Environment: environ})
	if err != nil {
		return ServerConfig{}, fmt.Errorf("parse server env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return ServerConfig{}, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	return cfg, nil
}
