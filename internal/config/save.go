package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with durations as strings so the written file
// stays readable ("10s" rather than nanoseconds).
type fileConfig struct {
	API struct {
		BaseURL    string `yaml:"base_url"`
		Timeout    string `yaml:"timeout"`
		RetryCount int    `yaml:"retry_count"`
		RetryWait  string `yaml:"retry_wait"`
	} `yaml:"api"`
	Breaker struct {
		MaxRequests         uint32 `yaml:"max_requests"`
		Interval            string `yaml:"interval"`
		Timeout             string `yaml:"timeout"`
		ConsecutiveFailures uint32 `yaml:"consecutive_failures"`
	} `yaml:"breaker"`
	Session SessionConfig `yaml:"session"`
	Catalog CatalogConfig `yaml:"catalog"`
	UI      struct {
		ToastDuration string `yaml:"toast_duration"`
	} `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

func toFile(cfg *Config) fileConfig {
	var f fileConfig
	f.API.BaseURL = cfg.API.BaseURL
	f.API.Timeout = cfg.API.Timeout.String()
	f.API.RetryCount = cfg.API.RetryCount
	f.API.RetryWait = cfg.API.RetryWait.String()
	f.Breaker.MaxRequests = cfg.Breaker.MaxRequests
	f.Breaker.Interval = cfg.Breaker.Interval.String()
	f.Breaker.Timeout = cfg.Breaker.Timeout.String()
	f.Breaker.ConsecutiveFailures = cfg.Breaker.ConsecutiveFailures
	f.Session = cfg.Session
	f.Catalog = cfg.Catalog
	f.UI.ToastDuration = cfg.UI.ToastDuration.String()
	f.Logging = cfg.Logging
	return f
}

// Save writes cfg as YAML to path, creating parent directories.
// If path is empty, DefaultPath is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	path = ExpandPath(path)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(toFile(cfg))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	header := []byte("# artisan configuration. Environment variables prefixed ARTISAN_ override these values.\n")
	if err := os.WriteFile(path, append(header, data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
