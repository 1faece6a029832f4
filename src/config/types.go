// Package config loads and merges tripsmith configuration from files
// and environment variables.
package config

import "time"

// Config represents the complete configuration for tripsmith
type Config struct {
	// Version of the configuration format
	Version string `json:"version"`

	// Model provider configuration
	Model ModelConfig `json:"model"`

	// Search provider (SerpAPI) configuration
	Search SearchConfig `json:"search"`

	// Weather provider configuration
	Weather WeatherConfig `json:"weather"`

	// Planner loop configuration
	Planner PlannerConfig `json:"planner"`

	// HTTP server configuration
	Server ServerConfig `json:"server"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Logging configuration
	Logging LoggingConfig `json:"logging,omitempty"`

	// Debug enables general debug logging
	Debug bool `json:"debug,omitempty"`
}

// ModelConfig defines the model backend.
type ModelConfig struct {
	// Provider is the backend name. Only "openrouter" is supported.
	Provider string `json:"provider"`

	// Model is the model slug, e.g. "meta-llama/llama-4-scout".
	Model string `json:"model"`

	// APIKey for the provider. Prefer APIKeyEnvVar in checked-in files.
	APIKey string `json:"api_key,omitempty"`

	// APIKeyEnvVar names the environment variable holding the key.
	APIKeyEnvVar string `json:"api_key_env_var,omitempty"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `json:"base_url,omitempty"`

	// Timeout for a single completion request.
	Timeout time.Duration `json:"timeout,omitempty"`

	// RetryCount for transient provider failures.
	RetryCount int `json:"retry_count,omitempty"`

	// SiteURL and SiteName identify this app to the provider.
	SiteURL  string `json:"site_url,omitempty"`
	SiteName string `json:"site_name,omitempty"`
}

// SearchConfig defines the SerpAPI backend used by the search tools.
type SearchConfig struct {
	APIKey       string `json:"api_key,omitempty"`
	APIKeyEnvVar string `json:"api_key_env_var,omitempty"`
	BaseURL      string `json:"base_url,omitempty"`

	// Currency for flight and hotel prices.
	Currency string `json:"currency,omitempty"`
}

// WeatherConfig defines the OpenWeatherMap backend.
type WeatherConfig struct {
	APIKey       string `json:"api_key,omitempty"`
	APIKeyEnvVar string `json:"api_key_env_var,omitempty"`
}

// PlannerConfig tunes the agent loop.
type PlannerConfig struct {
	// MaxToolCalls is the ceiling on cumulative tool-call requests per
	// planning run.
	MaxToolCalls int `json:"max_tool_calls,omitempty"`
}

// ServerConfig defines the HTTP API server.
type ServerConfig struct {
	// Addr to listen on, e.g. ":8080".
	Addr string `json:"addr,omitempty"`

	// ReadTimeout and WriteTimeout for the listener.
	ReadTimeout  time.Duration `json:"read_timeout,omitempty"`
	WriteTimeout time.Duration `json:"write_timeout,omitempty"`
}

// StorageConfig defines where planning runs are persisted.
type StorageConfig struct {
	// DatabasePath is the sqlite database file. Empty selects the XDG
	// default.
	DatabasePath string `json:"database_path,omitempty"`

	// ExportDir is where markdown itineraries are written. Empty
	// selects the XDG default.
	ExportDir string `json:"export_dir,omitempty"`
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `json:"level,omitempty"`

	// Format is the output format (text, json)
	Format string `json:"format,omitempty"`
}
