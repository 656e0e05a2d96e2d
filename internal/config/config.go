// Package config handles runtime settings for the Vita client tools.
//
// Settings come from three layers, later ones winning: built-in defaults,
// an optional config file (~/.vita/config.yaml), and environment variables
// parsed with caarlos0/env.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration shared by the CLI and the web UI.
type Config struct {
	// APIBaseURL is the base URL of the remote Vita REST API,
	// including the version prefix.
	APIBaseURL string `env:"VITA_API_URL" yaml:"api_url"`

	// Addr is the listen address of the local web UI.
	Addr string `env:"VITA_ADDR" yaml:"addr"`

	// CredentialsPath is the SQLite database holding tokens and the
	// cached profile (default ~/.vita/credentials.db, ":memory:" for
	// testing).
	CredentialsPath string `env:"VITA_CREDENTIALS" yaml:"credentials"`

	LogLevel  string `env:"VITA_LOG_LEVEL" yaml:"log_level"`
	LogFormat string `env:"VITA_LOG_FORMAT" yaml:"log_format"`
}

// Default returns sensible defaults.
func Default() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8000/api/v1",
		Addr:       ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load builds a Config from defaults, the optional config file, and the
// environment. A missing config file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	if path, err := FilePath(); err == nil {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	// Environment variables win over the file; fields without a
	// matching variable are left alone.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// FilePath returns the path of the config file (~/.vita/config.yaml).
func FilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".vita", "config.yaml"), nil
}

// ResolveCredentialsPath returns the credentials database path, creating
// the parent directory for the default location when needed.
func (c *Config) ResolveCredentialsPath() (string, error) {
	if c.CredentialsPath != "" {
		return c.CredentialsPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	dir := filepath.Join(home, ".vita")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return filepath.Join(dir, "credentials.db"), nil
}
