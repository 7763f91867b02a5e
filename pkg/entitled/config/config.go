package config

import (
	"context"
	"errors"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime configuration, read from the environment.
type Config struct {
	Port     string `env:"PORT,         default=8080"`
	Env      string `env:"ENV,          default=development"`
	LogLevel string `env:"LOG_LEVEL,    default=info"`
	DBPath   string `env:"ENTITLED_DB_PATH, default=entitled.db"`

	// APIKey is the pre-shared secret every request must present.
	APIKey       string `env:"ENTITLED_API_KEY"`
	APIKeyHeader string `env:"ENTITLED_API_KEY_HEADER, default=X-API-Key"`
}

// ErrMissingAPIKey is returned when ENTITLED_API_KEY is not set. The server
// refuses to start rather than serve unauthenticated.
var ErrMissingAPIKey = errors.New("config: ENTITLED_API_KEY must be set")

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &cfg, nil
}
