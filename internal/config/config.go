// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jonathan/linkedin-profile/internal/search"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey         = "GOOGLE_API_KEY"
	EnvSearchEngineID = "GOOGLE_CSE_ID"
	EnvBaseURL        = "CSE_BASE_URL"
	EnvTimeout        = "CSE_TIMEOUT_SECONDS"
)

// Config holds the search credentials and client settings.
// All fields are optional in a file; missing values come from the environment or CLI flags.
type Config struct {
	APIKey         string `json:"api_key,omitempty" validate:"required"`              // Custom Search API key
	SearchEngineID string `json:"search_engine_id,omitempty" validate:"required"`     // Programmable Search Engine id (cx)
	BaseURL        string `json:"base_url,omitempty" validate:"omitempty,url"`        // Override for the API host
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"gte=0,lte=300"` // HTTP timeout
	Concurrency    int    `json:"concurrency,omitempty" validate:"gte=0,lte=32"`      // Parallel lookups for batch runs
	Verbose        bool   `json:"verbose,omitempty"`                                  // Debug logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

	return &cfg, nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		APIKey:         os.Getenv(EnvAPIKey),
		SearchEngineID: os.Getenv(EnvSearchEngineID),
		BaseURL:        os.Getenv(EnvBaseURL),
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config error: %s must be an integer number of seconds: %w", EnvTimeout, err)
		}
		cfg.TimeoutSeconds = secs
	}

	return cfg, nil
}

// Load reads the optional config file at path and fills unset values from the environment.
func Load(path string) (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return &env, nil
	}

	fileCfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	merged := fileCfg.MergeWithDefaults(env)
	return &merged, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SearchEngineID == "" {
		result.SearchEngineID = defaults.SearchEngineID
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bools cannot distinguish unset from false; CLI flags win.

	return result
}

// Timeout returns the HTTP timeout, falling back to the search default.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return search.DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SearchOptions returns client options carrying these credentials.
func (c *Config) SearchOptions(log zerolog.Logger) *search.Options {
	opts := search.DefaultOptions()
	opts.APIKey = c.APIKey
	opts.SearchEngineID = c.SearchEngineID
	if c.BaseURL != "" {
		opts.BaseURL = c.BaseURL
	}
	opts.Timeout = c.Timeout()
	opts.Logger = log
	return opts
}
