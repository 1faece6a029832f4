// Package app wires configuration into the concrete services: model
// provider, search client, agent, storage, and exporter.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tripsmith/tripsmith/src/aisdk"
	"github.com/tripsmith/tripsmith/src/config"
	"github.com/tripsmith/tripsmith/src/export"
	"github.com/tripsmith/tripsmith/src/orclient"
	"github.com/tripsmith/tripsmith/src/serpapi"
	"github.com/tripsmith/tripsmith/src/storage"
	"github.com/tripsmith/tripsmith/src/tripagent"
)

// App holds all initialized services for one process.
type App struct {
	Config   *config.Config
	Provider *orclient.Client
	Model    aisdk.ModelClient
	Search   *serpapi.Client
	Agent    *tripagent.Agent
	Store    *storage.DB
	Exporter *export.Exporter
	Logger   *slog.Logger
}

// New initializes every service from the merged configuration.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	if cfg.Model.APIKey == "" {
		return nil, fmt.Errorf("model API key is not set (see %s)", cfg.Model.APIKeyEnvVar)
	}

	provider := orclient.NewClient(orclient.Config{
		APIKey:     cfg.Model.APIKey,
		BaseURL:    cfg.Model.BaseURL,
		Timeout:    cfg.Model.Timeout,
		RetryCount: cfg.Model.RetryCount,
		SiteURL:    cfg.Model.SiteURL,
		SiteName:   cfg.Model.SiteName,
		Logger:     logger,
	})

	model, err := provider.Model(ctx, cfg.Model.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to bind model %s: %w", cfg.Model.Model, err)
	}

	search, err := serpapi.NewClient(serpapi.Config{
		APIKey:  cfg.Search.APIKey,
		BaseURL: cfg.Search.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	agent, err := tripagent.New(tripagent.Config{
		Model:         model,
		Search:        search,
		WeatherAPIKey: cfg.Weather.APIKey,
		Currency:      cfg.Search.Currency,
		MaxToolCalls:  cfg.Planner.MaxToolCalls,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build agent: %w", err)
	}

	store, err := storage.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &App{
		Config:   cfg,
		Provider: provider,
		Model:    model,
		Search:   search,
		Agent:    agent,
		Store:    store,
		Exporter: export.New(cfg.Storage.ExportDir),
		Logger:   logger,
	}, nil
}

// Close closes all resources held by the app
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
