// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/noldarim/trackboard/internal/logger"
	"github.com/noldarim/trackboard/internal/store"
	"github.com/noldarim/trackboard/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// app is what every command needs: config, logging, tracing and the
// decorated store.
type app struct {
	cfg      *config.AppConfig
	store    store.Store
	tracing  *telemetry.Provider
	registry *prometheus.Registry
	location *time.Location
}

type bootstrapOptions struct {
	configPath string
	metrics    bool
}

func bootstrap(ctx context.Context, opts bootstrapOptions) (*app, error) {
	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loc, err := cfg.Dashboard.Location()
	if err != nil {
		logger.CloseGlobal()
		return nil, err
	}

	tp, err := telemetry.New(ctx, &cfg.Telemetry, telemetry.WithServiceVersion(appVersion))
	if err != nil {
		logger.CloseGlobal()
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	s, err := store.New(&cfg.Datastore)
	if err != nil {
		_ = tp.Shutdown(ctx)
		logger.CloseGlobal()
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}

	a := &app{cfg: cfg, tracing: tp, location: loc}

	if tp.Enabled() {
		s = store.WithTracing(s, tp, cfg.Datastore.Driver)
	}
	if opts.metrics {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s = store.WithMetrics(s, store.NewMetrics(a.registry), cfg.Datastore.Driver)
	}
	a.store = s

	return a, nil
}

func (a *app) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return errors.Join(
		a.store.Close(),
		a.tracing.Shutdown(ctx),
		logger.CloseGlobal(),
	)
}
