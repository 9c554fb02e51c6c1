// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"

	"github.com/noldarim/trackboard/internal/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/noldarim/trackboard/internal/store"

type tracedStore struct {
	Store
	tracer trace.Tracer
	driver string
}

// WithTracing wraps s so every ListProjects call produces a
// "store.ListProjects" span.
func WithTracing(s Store, tp trace.TracerProvider, driver string) Store {
	return &tracedStore{Store: s, tracer: tp.Tracer(tracerName), driver: driver}
}

func (t *tracedStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	ctx, span := t.tracer.Start(ctx, "store.ListProjects",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.driver", t.driver)),
	)
	defer span.End()

	projects, err := t.Store.ListProjects(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("projects.count", len(projects)))
	return projects, nil
}
