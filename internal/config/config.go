// Package config resolves the checker configuration from a YAML file.
//
// The file carries the domain list plus a handful of optional knobs. Unknown
// keys are ignored so older binaries keep working against newer config files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is the conventional config file location.
	DefaultPath = "config.yaml"

	// DefaultMinExpiryDays is the minimum remaining validity required of an
	// Expires field when the config does not say otherwise.
	DefaultMinExpiryDays = 30

	defaultTimeoutSecs = 15
)

// Config captures the resolved run configuration.
type Config struct {
	Domains            []string `mapstructure:"domains"`
	MinExpiryDays      int      `mapstructure:"min_expiry_days"`
	HealthcheckEnabled bool     `mapstructure:"healthcheck_enabled"`

	// Optional runtime tuning; command-line flags take precedence.
	Concurrency int `mapstructure:"concurrency"`
	RateLimit   int `mapstructure:"rate_limit"`
	TimeoutSecs int `mapstructure:"timeout_secs"`
}

// ConfigError indicates the configuration file is missing or invalid.
// It aborts the run before any domain is checked.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, e.Reason)
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ConfigError{Path: path, Reason: "file not found"}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("min_expiry_days", DefaultMinExpiryDays)
	v.SetDefault("healthcheck_enabled", false)
	v.SetDefault("concurrency", 1)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("timeout_secs", defaultTimeoutSecs)

	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("parse failure: %v", err)}
	}

	// min_expiry_days goes through cast explicitly so that a non-integer
	// value surfaces as a config error instead of silently decoding to zero.
	days, err := cast.ToIntE(v.Get("min_expiry_days"))
	if err != nil || days < 0 {
		return nil, &ConfigError{Path: path, Reason: "invalid min_expiry_days (must be a non-negative integer)"}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("invalid value: %v", err)}
	}
	cfg.MinExpiryDays = days

	if err := cfg.validate(); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Domains) == 0 {
		return fmt.Errorf("no domains configured")
	}
	for i, domain := range c.Domains {
		if strings.TrimSpace(domain) == "" {
			return fmt.Errorf("invalid domain at index %d", i)
		}
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative")
	}
	if c.TimeoutSecs < 1 {
		return fmt.Errorf("timeout_secs must be at least 1")
	}
	return nil
}
