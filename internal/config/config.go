// Package config provides configuration management for the report run.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath   = errors.New("input.path is required")
	ErrInvalidBaseURL     = errors.New("openlibrary.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout     = errors.New("openlibrary.timeout_sec must be positive")
	ErrInvalidRateLimit   = errors.New("openlibrary.requests_per_second must be non-negative")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrNoOutputSinkActive = errors.New("at least one of output.path or output.console must be set")
	ErrInvalidTableStyle  = errors.New("output.table_style must be one of: plain, markdown")
)

// Config represents the complete run configuration.
type Config struct {
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	OpenLibrary OpenLibraryConfig `yaml:"openlibrary"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// InputConfig locates the ISBN list.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines where the report is written.
type OutputConfig struct {
	Path       string `yaml:"path"`
	Console    bool   `yaml:"console"`
	TableStyle string `yaml:"table_style"`
}

// OpenLibraryConfig defines how the catalog is queried.
type OpenLibraryConfig struct {
	BaseURL           string  `yaml:"base_url"`
	UserAgent         string  `yaml:"user_agent"`
	TimeoutSec        float64 `yaml:"timeout_sec"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path: "books-isbns.txt",
		},
		Output: OutputConfig{
			Path:       "answers.txt",
			Console:    true,
			TableStyle: "plain",
		},
		OpenLibrary: OpenLibraryConfig{
			BaseURL:    "https://openlibrary.org",
			UserAgent:  "bookstats/1.0",
			TimeoutSec: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of Default.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Output.Path == "" && !c.Output.Console {
		return ErrNoOutputSinkActive
	}

	if c.Output.TableStyle != "plain" && c.Output.TableStyle != "markdown" {
		return fmt.Errorf("%w: %q", ErrInvalidTableStyle, c.Output.TableStyle)
	}

	u, err := url.Parse(c.OpenLibrary.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.OpenLibrary.BaseURL)
	}

	if c.OpenLibrary.TimeoutSec <= 0 {
		return ErrInvalidTimeout
	}

	if c.OpenLibrary.RequestsPerSecond < 0 {
		return ErrInvalidRateLimit
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetTimeout returns the per-request timeout.
func (o *OpenLibraryConfig) GetTimeout() time.Duration {
	return time.Duration(o.TimeoutSec * float64(time.Second))
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Catalog: %s, Timeout: %s}",
		c.Input.Path,
		c.Output.Path,
		c.OpenLibrary.BaseURL,
		c.OpenLibrary.GetTimeout(),
	)
}
