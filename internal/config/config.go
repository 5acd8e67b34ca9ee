// Package config loads runtime configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. The token is optional:
// unauthenticated requests work against public data at a lower rate limit.
type Config struct {
	GitHubToken   string
	RecentCommits int
	FrequencyDays int
}

// Load reads configuration from the environment, with a .env file in the
// working directory as an optional fallback.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("RECENT_COMMITS", 10)
	v.SetDefault("FREQUENCY_DAYS", 30)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	cfg := &Config{
		GitHubToken:   v.GetString("GITHUB_TOKEN"),
		RecentCommits: v.GetInt("RECENT_COMMITS"),
		FrequencyDays: v.GetInt("FREQUENCY_DAYS"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the numeric settings are usable.
func (c *Config) Validate() error {
	if c.RecentCommits < 1 {
		return fmt.Errorf("RECENT_COMMITS must be at least 1, got %d", c.RecentCommits)
	}
	if c.FrequencyDays < 1 {
		return fmt.Errorf("FREQUENCY_DAYS must be at least 1, got %d", c.FrequencyDays)
	}
	return nil
}
