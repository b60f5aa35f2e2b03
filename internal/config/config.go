// Package config provides configuration loading and validation for the pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Default settings applied when neither environment nor config file provide a value.
const (
	DefaultGeminiModel     = "gemini-2.5-flash"
	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultProviderTimeout = 30 * time.Second
)

// Config holds provider credentials and pipeline tuning. It is constructed once
// at process start and passed by reference into the orchestrator; no hidden
// global state.
type Config struct {
	// Provider credentials. An empty key marks that provider unavailable.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	OpenAIAPIKey string `json:"openai_api_key,omitempty"`

	// Model overrides
	GeminiModel string `json:"gemini_model,omitempty"`
	OpenAIModel string `json:"openai_model,omitempty"`

	// ProviderTimeoutSeconds bounds each individual provider attempt.
	ProviderTimeoutSeconds int `json:"provider_timeout_seconds,omitempty"`

	// Verbose enables detailed CLI output.
	Verbose bool `json:"verbose,omitempty"`
}

// FromEnv builds a Config from environment variables.
// Call godotenv.Load() first if a .env file should be honored.
func FromEnv() *Config {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
	}
	if v := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.ProviderTimeoutSeconds = secs
		}
	}
	return cfg
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ProviderTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'provider_timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Used to layer a config file under environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.OpenAIModel == "" {
		result.OpenAIModel = defaults.OpenAIModel
	}
	if result.ProviderTimeoutSeconds == 0 {
		result.ProviderTimeoutSeconds = defaults.ProviderTimeoutSeconds
	}

	return result
}

// ProviderTimeout returns the per-attempt timeout as a duration,
// falling back to the default when unset.
func (c *Config) ProviderTimeout() time.Duration {
	if c.ProviderTimeoutSeconds > 0 {
		return time.Duration(c.ProviderTimeoutSeconds) * time.Second
	}
	return DefaultProviderTimeout
}
