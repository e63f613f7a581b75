/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures server parameters by reading operating system environment variables,
including the running environment, port, CORS allowed origins, the remote AI chat
endpoint, and the local data file holding the persisted session slot.
*/
package configs

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`

	// Security Settings
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
	JWTSecret      string   `env:"JWT_SECRET"`

	// AI Chat Settings
	ChatAPIURL       string        `env:"CHAT_API_URL" envDefault:"https://polo-exhibit-feet-focus.trycloudflare.com/chat"`
	ChatReplyTimeout time.Duration `env:"CHAT_REPLY_TIMEOUT" envDefault:"120s"`

	// Local Data Settings
	// DataPath is the bbolt file holding the persisted session slot.
	DataPath string `env:"DATA_PATH" envDefault:"mindcampus.db"`
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary validation.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	if cfg.Environment == "development" {
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "your_default_insecure_secret_key_change_me"
		}
	} else {
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
	}

	if cfg.ChatAPIURL == "" {
		return nil, fmt.Errorf("CHAT_API_URL environment variable is required for the AI chat bridge")
	}

	if cfg.ChatReplyTimeout <= 0 {
		return nil, fmt.Errorf("CHAT_REPLY_TIMEOUT must be a positive duration, got %s", cfg.ChatReplyTimeout)
	}

	if cfg.DataPath == "" {
		return nil, fmt.Errorf("DATA_PATH environment variable is required for session persistence")
	}

	return cfg, nil
}
