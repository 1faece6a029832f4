// Package server exposes the trip planner over an HTTP JSON API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tripsmith/tripsmith/src/export"
	"github.com/tripsmith/tripsmith/src/storage"
	"github.com/tripsmith/tripsmith/src/tripagent"
)

// Config wires the server's dependencies.
type Config struct {
	Agent    *tripagent.Agent
	DB       *storage.DB
	Exporter *export.Exporter
	Addr     string
	Logger   *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	e      *echo.Echo
	addr   string
	logger *slog.Logger
}

// New builds the echo instance and registers all routes.
func New(cfg Config) (*Server, error) {
	if cfg.Agent == nil {
		return nil, fmt.Errorf("agent is required")
	}
	if cfg.DB == nil {
		return nil, fmt.Errorf("storage is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	logger := cfg.Logger.With("component", "server")
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		logger.Warn("request failed", "status", code, "method", req.Method, "path", req.URL.Path, "error", err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}

	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	ph := &PlansHandler{
		Agent:    cfg.Agent,
		DB:       cfg.DB,
		Exporter: cfg.Exporter,
		Validate: validator.New(),
		Logger:   logger,
	}
	ph.Register(e.Group("/api/plans"))

	return &Server{e: e, addr: cfg.Addr, logger: logger}, nil
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	s.logger.Info("listening", "addr", s.addr)
	if err := s.e.Start(s.addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
