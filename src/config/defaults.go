package config

import "time"

// DefaultConfig returns the built-in defaults. File and environment
// sources are merged on top.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Model: ModelConfig{
			Provider:     "openrouter",
			Model:        "meta-llama/llama-4-scout-17b-16e-instruct",
			APIKeyEnvVar: "OPENROUTER_API_KEY",
			Timeout:      120 * time.Second,
			RetryCount:   3,
			SiteName:     "tripsmith",
		},
		Search: SearchConfig{
			APIKeyEnvVar: "SERPAPI_API_KEY",
			Currency:     "INR",
		},
		Weather: WeatherConfig{
			APIKeyEnvVar: "OPENWEATHERMAP_API_KEY",
		},
		Planner: PlannerConfig{
			MaxToolCalls: 10,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 10 * time.Minute,
		},
		Storage: StorageConfig{
			DatabasePath: DefaultDatabasePath(),
			ExportDir:    DefaultExportDir(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
