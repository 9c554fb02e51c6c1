// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server serves the web dashboard, its JSON twin and the Prometheus
// endpoint. Every page or API request performs its own mount read.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetAPILogger()
		log = &l
	})
	return log
}

// Options carries what the handlers need besides the source.
type Options struct {
	Title    string
	Location *time.Location
	// Timeout bounds each mount read. Zero uses the request context only.
	Timeout time.Duration
	// Registry receives the HTTP collectors and backs /metrics. Nil
	// disables both.
	Registry *prometheus.Registry
}

// Server is the web dashboard server.
type Server struct {
	httpServer *http.Server
}

// New creates and wires up the server. It does NOT start listening; call
// Run() for that.
func New(cfg *config.ServerConfig, src dashboard.Source, opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           NewRouter(cfg, src, opts),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// NewRouter builds the chi router. Split out from New so tests can drive it
// through httptest.
func NewRouter(cfg *config.ServerConfig, src dashboard.Source, opts Options) http.Handler {
	if opts.Title == "" {
		opts.Title = dashboard.DefaultTitle
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	handlers := NewHandlers(src, opts)

	r := chi.NewRouter()

	// Global middleware
	r.Use(Recovery)
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(MaxBodySize(1 << 20))
	if opts.Registry != nil {
		r.Use(Instrument(NewHTTPMetrics(opts.Registry)))
	}

	r.Get("/", handlers.Index)
	r.Get("/healthz", handlers.Healthz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", handlers.ListProjects)
	})

	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))
	}

	return r
}

// Addr returns the listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		getLog().Info().Str("addr", s.httpServer.Addr).Msg("Dashboard server listening")
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return <-errCh
	}
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
