// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/noldarim/trackboard/test/testutil"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestWithTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	ok := &testutil.FakeSource{Projects: testutil.SampleProjects()}
	s := WithTracing(ok, tp, "file")

	projects, err := s.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, projects, 5)

	failing := WithTracing(&testutil.FakeSource{Err: errors.New("boom")}, tp, "postgrest")
	_, err = failing.ListProjects(context.Background())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "store.ListProjects", spans[0].Name())
	driver, _ := spanAttr(spans[0], "db.driver")
	assert.Equal(t, "file", driver.AsString())
	count, found := spanAttr(spans[0], "projects.count")
	require.True(t, found)
	assert.EqualValues(t, 5, count.AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "boom", spans[1].Status().Description)
	_, found = spanAttr(spans[1], "projects.count")
	assert.False(t, found)
	require.Len(t, spans[1].Events(), 1)
	assert.Equal(t, "exception", spans[1].Events()[0].Name)
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ok := WithMetrics(&testutil.FakeSource{Projects: testutil.SampleProjects()}, m, "sqlite")
	failing := WithMetrics(&testutil.FakeSource{Err: errors.New("boom")}, m, "sqlite")

	ctx := context.Background()
	_, _ = ok.ListProjects(ctx)
	_, _ = ok.ListProjects(ctx)
	_, _ = failing.ListProjects(ctx)

	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.FetchTotal.WithLabelValues("sqlite", "success")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.FetchTotal.WithLabelValues("sqlite", "error")))
	assert.Equal(t, 1, promtestutil.CollectAndCount(m.FetchDuration))

	// Double registration on the same registry panics.
	assert.Panics(t, func() { NewMetrics(reg) })
}
