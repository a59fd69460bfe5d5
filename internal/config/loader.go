// Package config provides configuration loading and management for artisan.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/wexinc/artisan/internal/catalog"
	apperrors "github.com/wexinc/artisan/internal/errors"
)

const (
	// FileName is the config file name inside the artisan directory.
	FileName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "ARTISAN"

	// EnvFile is read from the working directory before overrides are applied.
	// Variables already set in the environment win.
	EnvFile = ".env"
)

// DefaultPath returns ~/.artisan/config.yaml.
func DefaultPath() string {
	return filepath.Join(Dir(), FileName)
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v       *viper.Viper
	envFile string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, envFile: EnvFile}
}

// WithEnvFile sets the dotenv file to read. An empty path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// LoadConfig loads configuration from path, applies defaults, merges
// environment overrides and validates the result.
//
// If path is empty, DefaultPath is used and a missing file yields the
// defaults. An explicitly named file that does not exist is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	path = ExpandPath(path)

	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, &LoadError{Path: l.envFile, Message: "failed to read env file", Err: err}
		}
	}

	cfg := NewConfig()

	_, statErr := os.Stat(path)
	switch {
	case os.IsNotExist(statErr) && explicit:
		return nil, &LoadError{Path: path, Message: "config file not found", Err: statErr}
	case os.IsNotExist(statErr):
		// No config yet: defaults plus environment.
	default:
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     apperrors.ConfigParseError(path, err),
			}
		}
		if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to parse config file",
				Err:     apperrors.ConfigParseError(path, err),
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid environment override", Err: err}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

type envOverride struct {
	key   string
	apply func(cfg *Config, value string) error
}

func durationOverride(field func(*Config) *time.Duration) func(*Config, string) error {
	return func(cfg *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(cfg) = d
		return nil
	}
}

func uint32Override(field func(*Config) *uint32) func(*Config, string) error {
	return func(cfg *Config, v string) error {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return err
		}
		*field(cfg) = uint32(n)
		return nil
	}
}

var envOverrides = []envOverride{
	{"API_BASE_URL", func(c *Config, v string) error { c.API.BaseURL = v; return nil }},
	{"API_TIMEOUT", durationOverride(func(c *Config) *time.Duration { return &c.API.Timeout })},
	{"API_RETRY_COUNT", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.API.RetryCount = n
		return nil
	}},
	{"API_RETRY_WAIT", durationOverride(func(c *Config) *time.Duration { return &c.API.RetryWait })},
	{"BREAKER_MAX_REQUESTS", uint32Override(func(c *Config) *uint32 { return &c.Breaker.MaxRequests })},
	{"BREAKER_INTERVAL", durationOverride(func(c *Config) *time.Duration { return &c.Breaker.Interval })},
	{"BREAKER_TIMEOUT", durationOverride(func(c *Config) *time.Duration { return &c.Breaker.Timeout })},
	{"BREAKER_CONSECUTIVE_FAILURES", uint32Override(func(c *Config) *uint32 { return &c.Breaker.ConsecutiveFailures })},
	{"SESSION_FILE", func(c *Config, v string) error { c.Session.File = v; return nil }},
	{"CATALOG_DEFAULT_SORT", func(c *Config, v string) error { c.Catalog.DefaultSort = catalog.SortKey(v); return nil }},
	{"CATALOG_DEFAULT_CATEGORY", func(c *Config, v string) error { c.Catalog.DefaultCategory = catalog.Category(v); return nil }},
	{"CATALOG_VIEW_MODE", func(c *Config, v string) error { c.Catalog.ViewMode = catalog.ViewMode(v); return nil }},
	{"UI_TOAST_DURATION", durationOverride(func(c *Config) *time.Duration { return &c.UI.ToastDuration })},
	{"LOGGING_LEVEL", func(c *Config, v string) error { c.Logging.Level = v; return nil }},
	{"LOGGING_DIR", func(c *Config, v string) error { c.Logging.Dir = v; return nil }},
	{"LOGGING_JSON", func(c *Config, v string) error { c.Logging.JSON = parseBool(v); return nil }},
}

// applyEnvOverrides applies ARTISAN_* environment variables to cfg.
func applyEnvOverrides(cfg *Config) error {
	for _, o := range envOverrides {
		name := EnvPrefix + "_" + o.key
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			continue
		}
		if err := o.apply(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseBool returns true for "true", "1" and "yes" (case-insensitive).
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook composes the standard mapstructure hooks with ours.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCatalogTypeHookFunc(),
	)
}

// stringToCatalogTypeHookFunc normalizes catalog enums written in the config file.
func stringToCatalogTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		s := strings.TrimSpace(data.(string))
		switch to {
		case reflect.TypeOf(catalog.SortKey("")):
			return catalog.SortKey(strings.ToLower(s)), nil
		case reflect.TypeOf(catalog.Category("")):
			return catalog.ParseCategory(s), nil
		case reflect.TypeOf(catalog.ViewMode("")):
			return catalog.ViewMode(strings.ToLower(s)), nil
		}

		return data, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes every LoadError match apperrors.ErrConfig.
func (e *LoadError) Is(target error) bool {
	return target == apperrors.ErrConfig
}

// AppError converts the load failure into a user-facing error with a suggestion.
func (e *LoadError) AppError() *apperrors.AppError {
	var ae *apperrors.AppError
	if errors.As(e.Err, &ae) {
		return ae
	}
	var verrs ValidationErrors
	if errors.As(e.Err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return apperrors.ConfigValidationError(first.Field, e.Err.Error(), first.Options)
	}
	return apperrors.Wrap(e.Err, apperrors.ErrConfig, e.Message)
}

// Load is a convenience function that creates a new Loader and loads configuration.
// If path is empty, it uses DefaultPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
