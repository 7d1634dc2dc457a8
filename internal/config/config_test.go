package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

const validConfigYAML = `
input:
  path: "isbns.txt"
output:
  path: "out/answers.txt"
  console: false
  table_style: "markdown"
openlibrary:
  base_url: "http://localhost:8080"
  timeout_sec: 5
  requests_per_second: 2
logging:
  level: "debug"
`

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}

	if cfg.OpenLibrary.GetTimeout() != 2*time.Second {
		t.Errorf("Default timeout = %v, want 2s", cfg.OpenLibrary.GetTimeout())
	}

	if cfg.Output.Path != "answers.txt" {
		t.Errorf("Default output path = %q, want answers.txt", cfg.Output.Path)
	}

	if cfg.Input.Path != "books-isbns.txt" {
		t.Errorf("Default input path = %q, want books-isbns.txt", cfg.Input.Path)
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	configPath := createTempConfigFile(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Input.Path != "isbns.txt" {
		t.Errorf("Expected input path 'isbns.txt', got '%s'", cfg.Input.Path)
	}

	if cfg.Output.Console {
		t.Error("Expected console output disabled")
	}

	if cfg.Output.TableStyle != "markdown" {
		t.Errorf("Expected markdown tables, got '%s'", cfg.Output.TableStyle)
	}

	if cfg.OpenLibrary.RequestsPerSecond != 2 {
		t.Errorf("Expected 2 requests per second, got %v", cfg.OpenLibrary.RequestsPerSecond)
	}

	if cfg.OpenLibrary.GetTimeout() != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", cfg.OpenLibrary.GetTimeout())
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	configPath := createTempConfigFile(t, "logging:\n  level: warn\n")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected level warn, got %s", cfg.Logging.Level)
	}

	if cfg.OpenLibrary.BaseURL != "https://openlibrary.org" {
		t.Errorf("Expected default base URL, got %s", cfg.OpenLibrary.BaseURL)
	}

	if cfg.OpenLibrary.UserAgent != "bookstats/1.0" {
		t.Errorf("Expected default user agent, got %s", cfg.OpenLibrary.UserAgent)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := createTempConfigFile(t, "invalid: yaml: content: [}")

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, got nil")
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"Missing input", func(c *Config) { c.Input.Path = "" }, ErrMissingInputPath},
		{"No sinks", func(c *Config) {
			c.Output.Path = ""
			c.Output.Console = false
		}, ErrNoOutputSinkActive},
		{"Unknown table style", func(c *Config) { c.Output.TableStyle = "html" }, ErrInvalidTableStyle},
		{"Relative URL", func(c *Config) { c.OpenLibrary.BaseURL = "openlibrary.org" }, ErrInvalidBaseURL},
		{"FTP URL", func(c *Config) { c.OpenLibrary.BaseURL = "ftp://openlibrary.org" }, ErrInvalidBaseURL},
		{"Zero timeout", func(c *Config) { c.OpenLibrary.TimeoutSec = 0 }, ErrInvalidTimeout},
		{"Negative rate", func(c *Config) { c.OpenLibrary.RequestsPerSecond = -1 }, ErrInvalidRateLimit},
		{"Unknown level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_ConsoleOnly(t *testing.T) {
	cfg := Default()
	cfg.Output.Path = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected console-only output to be valid, got %v", err)
	}
}

func TestConfig_String(t *testing.T) {
	str := Default().String()
	if str == "" {
		t.Error("Expected non-empty string representation")
	}
}

func TestConfig_SaveConfig(t *testing.T) {
	cfg := Default()
	cfg.Input.Path = "saved-isbns.txt"

	savePath := filepath.Join(t.TempDir(), "saved_config.yaml")

	if err := cfg.SaveConfig(savePath); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(savePath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loaded.Input.Path != "saved-isbns.txt" {
		t.Error("Loaded config does not match saved config")
	}
}
