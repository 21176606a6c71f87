// Package config loads the cinerec configuration from disk with
// environment overrides for the API credential.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// envAPIKey overrides the configured TMDB API key when set.
const envAPIKey = "TMDB_API_KEY"

// Config holds all runtime settings.
type Config struct {
	TMDBAPIKey   string `json:"tmdb_api_key"`
	TMDBLanguage string `json:"tmdb_language"`

	// WorkerCount bounds the concurrent candidate-genre lookups in the
	// similar-titles stage.
	WorkerCount int `json:"worker_count"`

	// RequestTimeoutSecs is the uniform per-request socket timeout
	// applied to every upstream call.
	RequestTimeoutSecs int `json:"request_timeout_seconds"`

	// Listen is the web server bind address.
	Listen string `json:"listen"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"` // "console" or "json"
	LogPath   string `json:"log_path"`   // directory for log files, empty disables file logging
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TMDBLanguage:       "en-US",
		WorkerCount:        10,
		RequestTimeoutSecs: 10,
		Listen:             ":8080",
		LogLevel:           "info",
		LogFormat:          "console",
	}
}

// Path returns the config file location.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".cinerec", "config.json"), nil
}

// Load reads the configuration from disk, fills missing fields with
// defaults, and applies environment overrides. A missing file is not an
// error; defaults are returned instead.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := Default()
	if cfg.TMDBLanguage == "" {
		cfg.TMDBLanguage = defaults.TMDBLanguage
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaults.WorkerCount
	}
	if cfg.RequestTimeoutSecs <= 0 {
		cfg.RequestTimeoutSecs = defaults.RequestTimeoutSecs
	}
	if cfg.Listen == "" {
		cfg.Listen = defaults.Listen
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}

	// A local .env is honored the same way the environment is.
	_ = godotenv.Load()
	if key := os.Getenv(envAPIKey); key != "" {
		cfg.TMDBAPIKey = key
	}

	return cfg, nil
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}
