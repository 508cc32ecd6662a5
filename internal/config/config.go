// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is the server port used when none is configured
const DefaultPort = 8080

// Config represents the screener configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Candidates string `json:"candidates,omitempty"` // Path to candidates JSON file
	Job        string `json:"job,omitempty"`        // Path to job description JSON file

	// Server
	Port int `json:"port,omitempty"`

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console encoding
	Debug   bool `json:"debug,omitempty"`    // Enable debug level logging

	// SearchSeed fixes the corpus-search jitter source for reproducible
	// runs. Zero means seed from the clock.
	SearchSeed int64 `json:"search_seed,omitempty"`
}

// Default returns the configuration used when no file is given, with
// environment overrides applied.
func Default() *Config {
	cfg := &Config{Port: DefaultPort}
	applyEnv(cfg)
	return cfg
}

// Load loads configuration from a JSON file and applies environment
// overrides on top.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overrides config values from environment variables. godotenv is
// loaded by main before this runs.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SCREENER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("SCREENER_CANDIDATES"); v != "" {
		cfg.Candidates = v
	}
	if v := os.Getenv("SCREENER_JOB"); v != "" {
		cfg.Job = v
	}
	if v := os.Getenv("SCREENER_SEARCH_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.SearchSeed = seed
		}
	}
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); err != nil {
			return fmt.Errorf("config error: candidates file %s: %w", c.Candidates, err)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); err != nil {
			return fmt.Errorf("config error: job file %s: %w", c.Job, err)
		}
	}
	return nil
}
