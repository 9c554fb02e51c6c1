// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/test/testutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, src dashboard.Source, reg *prometheus.Registry) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(&config.ServerConfig{}, src, Options{Registry: reg}))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func decodeProjects(t *testing.T, body string) ProjectsResponse {
	t.Helper()
	var out ProjectsResponse
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestListProjects(t *testing.T) {
	src := &testutil.FakeSource{Projects: testutil.SampleProjects()}
	srv := newTestServer(t, src, nil)

	resp, body := get(t, srv.URL+"/api/v1/projects")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	out := decodeProjects(t, body)
	assert.Equal(t, 5, out.Total)
	require.Len(t, out.Projects, 5)
	assert.Equal(t, "Mar 5, 2024", out.Projects[0].Created)
	assert.Equal(t, "badge badge-green", out.Projects[0].StatusStyle.Class)
	assert.Equal(t, dashboard.InvalidDate, out.Projects[4].Updated)
	assert.True(t, out.Projects[4].StatusStyle.Fallback)
}

func TestListProjects_Filters(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{Projects: testutil.SampleProjects()}, nil)

	tests := []struct {
		query string
		ids   []string
	}{
		{"", []string{"p1", "p2", "p3", "p4", "p5"}},
		{"?status=TO+DO", []string{"p1", "p2"}},
		{"?priority=High", []string{"p1", "p4"}},
		{"?status=TO+DO&priority=High", []string{"p1"}},
		{"?status=PAUSED", nil},
		{"?status=BLOCKED", []string{"p5"}},
		{"?status=&priority=", []string{"p1", "p2", "p3", "p4", "p5"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, body := get(t, srv.URL+"/api/v1/projects"+tt.query)
			out := decodeProjects(t, body)

			var ids []string
			for _, p := range out.Projects {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, len(tt.ids), out.Total)
		})
	}
}

func TestListProjects_FailureIsEmpty(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{Err: errors.New("boom")}, nil)

	resp, body := get(t, srv.URL+"/api/v1/projects?status=COMPLETED")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeProjects(t, body)
	assert.NotNil(t, out.Projects)
	assert.Empty(t, out.Projects)
	assert.Equal(t, "COMPLETED", string(out.Filters.Status))
	assert.NotContains(t, body, "boom")
}

func TestIndex(t *testing.T) {
	src := &testutil.FakeSource{Projects: testutil.SampleProjects()}
	srv := newTestServer(t, src, nil)

	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	assert.Contains(t, body, "<title>Project Management Dashboard</title>")
	assert.Contains(t, body, `<select name="status"`)
	assert.Contains(t, body, `<option value="" selected>Status</option>`)
	assert.Contains(t, body, `<option value="" selected>Priority</option>`)
	assert.Contains(t, body, "@media (min-width: 768px)")
	assert.Contains(t, body, `class="badge badge-blue"`)
	assert.Contains(t, body, `class="badge badge-gray"`)
	assert.Contains(t, body, "Mar 5, 2024")
	assert.Contains(t, body, `<p class="empty" id="empty" hidden>`)
	// Each row appears once in the table and once as a card.
	assert.Equal(t, 10, strings.Count(body, `aria-label="More"`))
	assert.Equal(t, 1, src.Calls())
}

func TestIndex_EmptyState(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{Projects: testutil.SampleProjects()}, nil)

	_, body := get(t, srv.URL+"/?status=PAUSED")
	assert.Contains(t, body, `<p class="empty" id="empty">`+dashboard.EmptyMessage)
	assert.Contains(t, body, `<div class="table-view" data-view hidden>`)
	assert.Contains(t, body, `<div class="cards" data-view hidden>`)
	assert.Contains(t, body, `<option value="PAUSED" selected>PAUSED</option>`)
}

func TestIndex_EmptyCollection(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{}, nil)

	_, body := get(t, srv.URL+"/")
	assert.Contains(t, body, `<p class="empty" id="empty">`+dashboard.EmptyMessage)
	assert.Zero(t, strings.Count(body, `aria-label="More"`))
}

func TestIndex_FiltersSnapshotInPage(t *testing.T) {
	src := &testutil.FakeSource{Projects: testutil.SampleProjects()}
	srv := newTestServer(t, src, nil)

	_, body := get(t, srv.URL+"/?status=TO+DO")
	assert.Equal(t, 1, src.Calls())

	// The whole snapshot is in the page; rows failing the initial selector
	// are hidden and the page script re-applies selector changes locally.
	assert.Contains(t, body, `<tr data-id="p1" data-status="TO DO" data-priority="High">`)
	assert.Contains(t, body, `<tr data-id="p3" data-status="COMPLETED" data-priority="Medium" hidden>`)
	assert.Contains(t, body, `<div class="card" data-id="p4" data-status="IN PROGRESS" data-priority="High" hidden>`)
	assert.Equal(t, 10, strings.Count(body, `aria-label="More"`))
	assert.Contains(t, body, `<p class="empty" id="empty" hidden>`)
	assert.Contains(t, body, "<script>")
	assert.Contains(t, body, `form.addEventListener("change", apply)`)
	assert.Contains(t, body, `<noscript><button type="submit">Apply</button></noscript>`)
}

func TestIndex_UnknownFilterRoundTrips(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{Projects: testutil.SampleProjects()}, nil)

	_, body := get(t, srv.URL+"/?priority=Urgent")
	assert.Contains(t, body, `<option value="Urgent" selected>Urgent</option>`)
	assert.Contains(t, body, `<tr data-id="p5" data-status="BLOCKED" data-priority="Urgent">`)
	assert.Contains(t, body, `<tr data-id="p4" data-status="IN PROGRESS" data-priority="High" hidden>`)
}

func TestIndex_EscapesWork(t *testing.T) {
	projects := testutil.SampleProjects()[:1]
	projects[0].Work = "<script>alert(1)</script>"
	srv := newTestServer(t, &testutil.FakeSource{Projects: projects}, nil)

	_, body := get(t, srv.URL+"/")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Equal(t, 1, strings.Count(body, "<script>"))
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{}, nil)
	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	srv := newTestServer(t, &testutil.FakeSource{}, reg)

	get(t, srv.URL+"/api/v1/projects?status=TO+DO")
	get(t, srv.URL+"/nope")

	resp, body := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `trackboard_http_requests_total{code="200",method="GET",route="/api/v1/projects"} 1`)
	assert.Contains(t, body, `code="404"`)
	assert.NotContains(t, body, "status=TO")
}

func TestMetrics_DisabledWithoutRegistry(t *testing.T) {
	srv := newTestServer(t, &testutil.FakeSource{}, nil)
	resp, _ := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	h := NewRouter(&config.ServerConfig{AllowedOrigins: []string{"https://ok.example"}}, &testutil.FakeSource{}, Options{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/projects", nil)
	req.Header.Set("Origin", "https://ok.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://ok.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetRequestID(r.Context())))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "bad id\nwith newline")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Len(t, rec.Body.String(), 36)
}

func TestRecovery(t *testing.T) {
	h := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := New(&config.ServerConfig{Host: "127.0.0.1", Port: 0}, &testutil.FakeSource{}, Options{})
	assert.Equal(t, "127.0.0.1:0", s.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
