package main

import (
	"github.com/tripsmith/tripsmith/src/config"
)

// loadConfig loads the merged configuration, honoring an explicit
// config path from the command line.
func loadConfig(cli *CLI) (*config.Config, error) {
	loader := config.NewLoader()
	if cli.Config != "" {
		loader.UserConfigPath = cli.Config
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	return cfg, nil
}
