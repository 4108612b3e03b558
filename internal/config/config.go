// Package config loads tool configuration for docmark from a YAML file with
// an optional .env overlay and environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level tool configuration.
type Config struct {
	// Language is the fence language used for hover signature blocks.
	Language string        `yaml:"language"`
	Logging  LoggingConfig `yaml:"logging"`
	Store    StoreConfig   `yaml:"store"`
	Metrics  MetricsConfig `yaml:"metrics"`
}

// LoggingConfig controls slog handler selection.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StoreConfig points at the legacy comment store database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig toggles the Prometheus recorder.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Language: "java",
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Store:    StoreConfig{Path: "comments.db"},
	}
}

// Load reads configuration from path, overlaying .env and environment
// variables. An empty path yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read configuration file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse configuration file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv applies DOCMARK_* environment overrides on top of file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("DOCMARK_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("DOCMARK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DOCMARK_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("DOCMARK_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
}
