// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultTimeoutSeconds is the per-request HTTP timeout when none is set.
const DefaultTimeoutSeconds = 15

// Config represents the CLI configuration. Values come from an optional
// JSON file in the console home, overridden by environment variables.
type Config struct {
	// BaseURL is the backend API base URL, resolved exactly once at startup.
	BaseURL string `json:"base_url,omitempty"`

	// Home is the directory holding the config file and the persisted token.
	Home string `json:"-"`

	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// LogLevel and LogEnv configure the structured logger.
	LogLevel string `json:"log_level,omitempty"`
	LogEnv   string `json:"log_env,omitempty"`
}

// Load resolves the configuration: defaults, then the optional config.json
// in the console home, then environment variables.
func Load() (*Config, error) {
	home := os.Getenv("RECRUITER_CONSOLE_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		home = filepath.Join(userHome, ".recruiter-console")
	}

	cfg := &Config{
		Home:           home,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}

	if err := cfg.loadFile(filepath.Join(home, "config.json")); err != nil {
		return nil, err
	}

	if v := os.Getenv("RECRUITER_API_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RECRUITER_HTTP_TIMEOUT"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RECRUITER_HTTP_TIMEOUT: %v", err)
		}
		cfg.TimeoutSeconds = seconds
	}
	if v := os.Getenv("RECRUITER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RECRUITER_LOG_ENV"); v != "" {
		cfg.LogEnv = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges values from a JSON config file. A missing file is fine.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config error: API base URL is required (set RECRUITER_API_BASE_URL)")
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config error: invalid API base URL %q", c.BaseURL)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("config error: timeout must be positive")
	}
	return nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TokenPath returns the path of the single durable token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Home, "token")
}
