// Package config loads moodctl configuration from environment variables.
package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// Config holds everything the CLI reads from the environment. APIBaseURL
// carries no default on purpose: the client layer owns the localhost
// fallback and logs a diagnostic when it kicks in.
type Config struct {
	APIBaseURL  string `env:"MOODIFY_API_URL"`
	SessionFile string `env:"MOODIFY_SESSION_FILE"`
	LogLevel    string `env:"LOG_LEVEL,  default=info"`
	LogPretty   bool   `env:"LOG_PRETTY, default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
