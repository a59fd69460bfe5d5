// Package config provides configuration data structures for artisan.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wexinc/artisan/internal/catalog"
	"github.com/wexinc/artisan/internal/logging"
)

// Config represents the complete artisan configuration loaded from ~/.artisan/config.yaml.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"     mapstructure:"api"`
	Breaker BreakerConfig `yaml:"breaker" json:"breaker" mapstructure:"breaker"`
	Session SessionConfig `yaml:"session" json:"session" mapstructure:"session"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog" mapstructure:"catalog"`
	UI      UIConfig      `yaml:"ui"      json:"ui"      mapstructure:"ui"`
	Logging LoggingConfig `yaml:"logging" json:"logging" mapstructure:"logging"`
}

// APIConfig configures the storefront HTTP client.
type APIConfig struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api.
	BaseURL string `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	// Timeout bounds a single HTTP attempt (default: 10s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	// RetryCount is the number of extra attempts for failed GET requests (default: 2).
	RetryCount int `yaml:"retry_count" json:"retry_count" mapstructure:"retry_count"`
	// RetryWait is the initial wait between retries (default: 500ms).
	RetryWait time.Duration `yaml:"retry_wait" json:"retry_wait" mapstructure:"retry_wait"`
}

// BreakerConfig configures the circuit breaker around the API client.
type BreakerConfig struct {
	MaxRequests         uint32        `yaml:"max_requests"         json:"max_requests"         mapstructure:"max_requests"`
	Interval            time.Duration `yaml:"interval"             json:"interval"             mapstructure:"interval"`
	Timeout             time.Duration `yaml:"timeout"              json:"timeout"              mapstructure:"timeout"`
	ConsecutiveFailures uint32        `yaml:"consecutive_failures" json:"consecutive_failures" mapstructure:"consecutive_failures"`
}

// SessionConfig configures where the login token is kept.
type SessionConfig struct {
	// File is the session file path (default: ~/.artisan/session.yaml).
	File string `yaml:"file" json:"file" mapstructure:"file"`
}

// CatalogConfig sets the initial product list criteria.
type CatalogConfig struct {
	DefaultSort     catalog.SortKey  `yaml:"default_sort"     json:"default_sort"     mapstructure:"default_sort"`
	DefaultCategory catalog.Category `yaml:"default_category" json:"default_category" mapstructure:"default_category"`
	ViewMode        catalog.ViewMode `yaml:"view_mode"        json:"view_mode"        mapstructure:"view_mode"`
}

// Criteria returns the initial filter criteria.
func (c CatalogConfig) Criteria() catalog.FilterCriteria {
	return catalog.FilterCriteria{
		Category: c.DefaultCategory,
		Sort:     c.DefaultSort,
		View:     c.ViewMode,
	}
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// ToastDuration is how long notifications stay visible (default: 4s).
	ToastDuration time.Duration `yaml:"toast_duration" json:"toast_duration" mapstructure:"toast_duration"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	Dir   string `yaml:"dir"   json:"dir"   mapstructure:"dir"`
	JSON  bool   `yaml:"json"  json:"json"  mapstructure:"json"`
}

// Default values.
const (
	DefaultBaseURL       = "http://localhost:8080/api"
	DefaultAPITimeout    = 10 * time.Second
	DefaultRetryCount    = 2
	DefaultRetryWait     = 500 * time.Millisecond
	DefaultBreakerWindow = time.Minute
	DefaultBreakerCool   = 30 * time.Second
	DefaultFailures      = 5
	DefaultToastDuration = 4 * time.Second
	DefaultLogLevel      = "info"
)

// Dir returns the artisan home directory, ~/.artisan.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".artisan"
	}
	return filepath.Join(home, ".artisan")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    DefaultBaseURL,
			Timeout:    DefaultAPITimeout,
			RetryCount: DefaultRetryCount,
			RetryWait:  DefaultRetryWait,
		},
		Breaker: BreakerConfig{
			MaxRequests:         1,
			Interval:            DefaultBreakerWindow,
			Timeout:             DefaultBreakerCool,
			ConsecutiveFailures: DefaultFailures,
		},
		Session: SessionConfig{
			File: filepath.Join(Dir(), "session.yaml"),
		},
		Catalog: CatalogConfig{
			DefaultSort:     catalog.SortName,
			DefaultCategory: catalog.CategoryAll,
			ViewMode:        catalog.ViewGrid,
		},
		UI: UIConfig{
			ToastDuration: DefaultToastDuration,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
			Dir:   filepath.Join(Dir(), "logs"),
		},
	}
}

// ApplyDefaults fills unset fields after loading and expands ~ in paths.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	// RetryCount 0 is a legitimate choice, so it is left alone.
	if c.API.RetryWait == 0 {
		c.API.RetryWait = defaults.API.RetryWait
	}

	if c.Breaker.MaxRequests == 0 {
		c.Breaker.MaxRequests = defaults.Breaker.MaxRequests
	}
	if c.Breaker.Timeout == 0 {
		c.Breaker.Timeout = defaults.Breaker.Timeout
	}
	if c.Breaker.ConsecutiveFailures == 0 {
		c.Breaker.ConsecutiveFailures = defaults.Breaker.ConsecutiveFailures
	}

	if c.Session.File == "" {
		c.Session.File = defaults.Session.File
	}
	c.Session.File = ExpandPath(c.Session.File)

	if c.Catalog.DefaultSort == "" {
		c.Catalog.DefaultSort = defaults.Catalog.DefaultSort
	}
	if c.Catalog.DefaultCategory == "" {
		c.Catalog.DefaultCategory = defaults.Catalog.DefaultCategory
	} else {
		c.Catalog.DefaultCategory = catalog.ParseCategory(string(c.Catalog.DefaultCategory))
	}
	if c.Catalog.ViewMode == "" {
		c.Catalog.ViewMode = defaults.Catalog.ViewMode
	}

	if c.UI.ToastDuration == 0 {
		c.UI.ToastDuration = defaults.UI.ToastDuration
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = defaults.Logging.Dir
	}
	c.Logging.Dir = ExpandPath(c.Logging.Dir)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, msg string, options ...string) {
		errs = append(errs, &ValidationError{Field: field, Message: msg, Options: options})
	}

	if u, err := url.Parse(c.API.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		add("api.base_url", "must be an absolute http or https URL")
	}
	if c.API.Timeout < 0 {
		add("api.timeout", "must be non-negative")
	}
	if c.API.RetryCount < 0 || c.API.RetryCount > 10 {
		add("api.retry_count", "must be between 0 and 10")
	}
	if c.API.RetryWait < 0 {
		add("api.retry_wait", "must be non-negative")
	}

	if c.Breaker.Interval < 0 {
		add("breaker.interval", "must be non-negative")
	}
	if c.Breaker.Timeout < 0 {
		add("breaker.timeout", "must be non-negative")
	}

	if !isSortKey(c.Catalog.DefaultSort) {
		add("catalog.default_sort", fmt.Sprintf("unknown sort %q", c.Catalog.DefaultSort), sortKeyNames()...)
	}
	if c.Catalog.DefaultCategory != "" && !c.Catalog.DefaultCategory.IsKnown() {
		add("catalog.default_category", fmt.Sprintf("unknown category %q", c.Catalog.DefaultCategory), categoryNames()...)
	}
	switch c.Catalog.ViewMode {
	case "", catalog.ViewGrid, catalog.ViewList:
	default:
		add("catalog.view_mode", "must be 'grid' or 'list'", string(catalog.ViewGrid), string(catalog.ViewList))
	}

	if c.UI.ToastDuration < 0 {
		add("ui.toast_duration", "must be non-negative")
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level", "must be 'debug', 'info', 'warn', or 'error'", "debug", "info", "warn", "error")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoggingSettings converts the logging section into a logger configuration.
func (c *Config) LoggingSettings() *logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = level
	}
	if c.Logging.Dir != "" {
		cfg.LogDir = c.Logging.Dir
	}
	cfg.JSONFormat = c.Logging.JSON
	return cfg
}

func isSortKey(key catalog.SortKey) bool {
	if key == "" {
		return true
	}
	for _, k := range catalog.SortKeys {
		if k == key {
			return true
		}
	}
	return false
}

func sortKeyNames() []string {
	names := make([]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		names[i] = string(k)
	}
	return names
}

func categoryNames() []string {
	names := make([]string, len(catalog.Categories))
	for i, c := range catalog.Categories {
		names[i] = string(c)
	}
	return names
}
