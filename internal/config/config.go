// Package config loads client configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the client configuration.
type Config struct {
	// APIURL is the base URL of the hosted backend.
	APIURL string

	// APIKey is the project's public API key, sent with every request.
	APIKey string

	// DataDir is where the durable queue and the local mirror live.
	DataDir string
}

// Load reads configuration from MOMENTUM_* environment variables. A
// .env file in the working directory is merged in when present but
// never overrides the real environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:  os.Getenv("MOMENTUM_API_URL"),
		APIKey:  os.Getenv("MOMENTUM_API_KEY"),
		DataDir: os.Getenv("MOMENTUM_DATA_DIR"),
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("MOMENTUM_API_URL is not set")
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".momentum")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// QueueDBPath is the bbolt file holding the queue, dead letters and the
// session.
func (c *Config) QueueDBPath() string {
	return filepath.Join(c.DataDir, "momentum.db")
}

// MirrorDBPath is the SQLite file holding the local read model.
func (c *Config) MirrorDBPath() string {
	return filepath.Join(c.DataDir, "mirror.db")
}
