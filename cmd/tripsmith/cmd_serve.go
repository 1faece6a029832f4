package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/tripsmith/tripsmith/src/app"
	"github.com/tripsmith/tripsmith/src/server"
)

// ServeCmd runs the HTTP API server.
type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)"`
}

func (s *ServeCmd) Run(kctx *kong.Context, cli *CLI) error {
	logger := createLogger(cli.LogLevel)

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Server.Addr = s.Addr
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	srv, err := server.New(server.Config{
		Agent:    application.Agent,
		DB:       application.Store,
		Exporter: application.Exporter,
		Addr:     cfg.Server.Addr,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
