// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/noldarim/trackboard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the datastore collectors.
type Metrics struct {
	FetchTotal    *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
}

// NewMetrics registers the datastore collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trackboard",
			Subsystem: "datastore",
			Name:      "fetch_total",
			Help:      "Project list reads by driver and outcome.",
		}, []string{"driver", "outcome"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "trackboard",
			Subsystem: "datastore",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of project list reads.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"driver"}),
	}
}

type meteredStore struct {
	Store
	metrics *Metrics
	driver  string
}

// WithMetrics wraps s so every ListProjects call is counted and timed.
func WithMetrics(s Store, m *Metrics, driver string) Store {
	return &meteredStore{Store: s, metrics: m, driver: driver}
}

func (m *meteredStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	start := time.Now()
	projects, err := m.Store.ListProjects(ctx)
	m.metrics.FetchDuration.WithLabelValues(m.driver).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.metrics.FetchTotal.WithLabelValues(m.driver, outcome).Inc()
	return projects, err
}
