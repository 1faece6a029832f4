package config

import (
	"fmt"
)

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
var validLogFormats = map[string]bool{"text": true, "json": true}

// Validate checks a merged configuration for values that would break
// startup. Missing API keys are not checked here; only the subsystems a
// command actually uses require them.
func Validate(config *Config) error {
	if config.Version == "" {
		config.Version = "1.0"
	}

	if config.Model.Provider != "openrouter" {
		return ValidationError{
			Field:   "model.provider",
			Message: fmt.Sprintf("unsupported provider %q, only \"openrouter\" is available", config.Model.Provider),
		}
	}
	if config.Model.Model == "" {
		return ValidationError{Field: "model.model", Message: "model slug is required"}
	}
	if config.Model.RetryCount < 0 {
		return ValidationError{Field: "model.retry_count", Message: "must not be negative"}
	}

	if config.Planner.MaxToolCalls < 1 {
		return ValidationError{Field: "planner.max_tool_calls", Message: "must be at least 1"}
	}

	if config.Server.Addr == "" {
		return ValidationError{Field: "server.addr", Message: "listen address is required"}
	}

	if level := config.Logging.Level; level != "" && !validLogLevels[level] {
		return ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q (debug, info, warn, error)", level),
		}
	}
	if format := config.Logging.Format; format != "" && !validLogFormats[format] {
		return ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q (text, json)", format),
		}
	}

	return nil
}
