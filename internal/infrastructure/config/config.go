package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIURL      string        `env:"JOBPORTAL_API_URL,   default=http://localhost:5000/api"`
	StateDir    string        `env:"JOBPORTAL_STATE_DIR"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,        default=15s"`
	Env         string        `env:"ENV,                 default=development"`
	LogLevel    string        `env:"LOG_LEVEL,           default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,          default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
// When JOBPORTAL_STATE_DIR is unset the credential lives under the user's
// config directory.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(base, "jobportal")
	}
	return &cfg, nil
}
