package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Loader handles loading and merging configurations from multiple sources
type Loader struct {
	// UserConfigPath is the user-level config file. Empty selects the
	// XDG default.
	UserConfigPath string

	// ProjectConfigPath is an optional per-directory override file.
	ProjectConfigPath string
}

// NewLoader creates a loader with the default source paths.
func NewLoader() *Loader {
	return &Loader{
		UserConfigPath:    DefaultUserConfigPath(),
		ProjectConfigPath: "tripsmith.json",
	}
}

// Load loads configuration from all sources and merges them: defaults,
// then user file, then project file, then environment variables.
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	for _, path := range []string{l.UserConfigPath, l.ProjectConfigPath} {
		if path == "" {
			continue
		}
		cfg, err := l.loadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		config = mergeConfigs(config, cfg)
	}

	l.applyEnvironment(config)

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func (l *Loader) loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &config, nil
}

// applyEnvironment resolves API keys from their configured environment
// variables. Keys set directly in a file win.
func (l *Loader) applyEnvironment(config *Config) {
	if config.Model.APIKey == "" && config.Model.APIKeyEnvVar != "" {
		config.Model.APIKey = os.Getenv(config.Model.APIKeyEnvVar)
	}
	if config.Search.APIKey == "" && config.Search.APIKeyEnvVar != "" {
		config.Search.APIKey = os.Getenv(config.Search.APIKeyEnvVar)
	}
	if config.Weather.APIKey == "" && config.Weather.APIKeyEnvVar != "" {
		config.Weather.APIKey = os.Getenv(config.Weather.APIKeyEnvVar)
	}
	if addr := os.Getenv("TRIPSMITH_ADDR"); addr != "" {
		config.Server.Addr = addr
	}
	if os.Getenv("TRIPSMITH_DEBUG") == "1" {
		config.Debug = true
		config.Logging.Level = "debug"
	}
}

// mergeConfigs merges two configurations with the second taking precedence
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	if override.Model.Provider != "" {
		result.Model.Provider = override.Model.Provider
	}
	if override.Model.Model != "" {
		result.Model.Model = override.Model.Model
	}
	if override.Model.APIKey != "" {
		result.Model.APIKey = override.Model.APIKey
	}
	if override.Model.APIKeyEnvVar != "" {
		result.Model.APIKeyEnvVar = override.Model.APIKeyEnvVar
	}
	if override.Model.BaseURL != "" {
		result.Model.BaseURL = override.Model.BaseURL
	}
	if override.Model.Timeout != 0 {
		result.Model.Timeout = override.Model.Timeout
	}
	if override.Model.RetryCount != 0 {
		result.Model.RetryCount = override.Model.RetryCount
	}
	if override.Model.SiteURL != "" {
		result.Model.SiteURL = override.Model.SiteURL
	}
	if override.Model.SiteName != "" {
		result.Model.SiteName = override.Model.SiteName
	}

	if override.Search.APIKey != "" {
		result.Search.APIKey = override.Search.APIKey
	}
	if override.Search.APIKeyEnvVar != "" {
		result.Search.APIKeyEnvVar = override.Search.APIKeyEnvVar
	}
	if override.Search.BaseURL != "" {
		result.Search.BaseURL = override.Search.BaseURL
	}
	if override.Search.Currency != "" {
		result.Search.Currency = override.Search.Currency
	}

	if override.Weather.APIKey != "" {
		result.Weather.APIKey = override.Weather.APIKey
	}
	if override.Weather.APIKeyEnvVar != "" {
		result.Weather.APIKeyEnvVar = override.Weather.APIKeyEnvVar
	}

	if override.Planner.MaxToolCalls != 0 {
		result.Planner.MaxToolCalls = override.Planner.MaxToolCalls
	}

	if override.Server.Addr != "" {
		result.Server.Addr = override.Server.Addr
	}
	if override.Server.ReadTimeout != 0 {
		result.Server.ReadTimeout = override.Server.ReadTimeout
	}
	if override.Server.WriteTimeout != 0 {
		result.Server.WriteTimeout = override.Server.WriteTimeout
	}

	if override.Storage.DatabasePath != "" {
		result.Storage.DatabasePath = override.Storage.DatabasePath
	}
	if override.Storage.ExportDir != "" {
		result.Storage.ExportDir = override.Storage.ExportDir
	}

	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		result.Logging.Format = override.Logging.Format
	}

	if override.Debug {
		result.Debug = true
	}

	return &result
}
