// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/models"

	"github.com/samber/lo"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	src  dashboard.Source
	opts Options
}

// NewHandlers creates the handler set.
func NewHandlers(src dashboard.Source, opts Options) *Handlers {
	return &Handlers{src: src, opts: opts}
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLog().Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// filtersFrom reads ?status= and ?priority=. Values are taken as-is, so an
// unrecognized value only matches rows carrying that same raw value.
func filtersFrom(r *http.Request) dashboard.Filters {
	q := r.URL.Query()
	return dashboard.Filters{
		Status:   models.Status(q.Get("status")),
		Priority: models.Priority(q.Get("priority")),
	}
}

// mount performs the per-request read and applies f. A failed read leaves
// the state settled on the empty list.
func (h *Handlers) mount(ctx context.Context, f dashboard.Filters) dashboard.State {
	state := dashboard.NewState()
	state.Settle(dashboard.LoadWithTimeout(ctx, h.src, h.opts.Timeout))
	state.SetFilters(f)
	return state
}

// --- handlers ---

// FiltersResponse echoes the applied selectors.
type FiltersResponse struct {
	Status   models.Status   `json:"status"`
	Priority models.Priority `json:"priority"`
}

// ProjectsResponse is the body of GET /api/v1/projects.
type ProjectsResponse struct {
	Projects []dashboard.Row `json:"projects"`
	Total    int             `json:"total"`
	Filters  FiltersResponse `json:"filters"`
}

// ListProjects handles GET /api/v1/projects
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	f := filtersFrom(r)
	state := h.mount(r.Context(), f)
	rows := dashboard.Rows(state.Visible(), h.opts.Location)

	writeJSON(w, http.StatusOK, ProjectsResponse{
		Projects: rows,
		Total:    len(rows),
		Filters:  FiltersResponse{Status: f.Status, Priority: f.Priority},
	})
}

// Healthz handles GET /healthz
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

func selectOptions[T ~string](unset string, known []T, current T) []selectOption {
	opts := []selectOption{{Value: "", Label: unset, Selected: current == ""}}
	opts = append(opts, lo.Map(known, func(v T, _ int) selectOption {
		return selectOption{Value: string(v), Label: string(v), Selected: v == current}
	})...)
	// Keep a raw value from the query selected so the form round-trips it.
	if current != "" && !lo.Contains(known, current) {
		opts = append(opts, selectOption{Value: string(current), Label: string(current), Selected: true})
	}
	return opts
}

// pageRow is one snapshot row. Hidden rows fail the initial selectors and
// are shown again by the page script when the selectors change.
type pageRow struct {
	dashboard.Row
	Hidden bool
}

type pageData struct {
	Title           string
	StatusOptions   []selectOption
	PriorityOptions []selectOption
	Rows            []pageRow
	ShowEmpty       bool
	EmptyMessage    string
	MenuGlyph       string
	Headers         []string
}

// pageRows renders the whole snapshot so the selectors can be changed in the
// browser without another read.
func pageRows(state dashboard.State, loc *time.Location) []pageRow {
	f := state.Filters()
	items := state.Items()
	rows := dashboard.Rows(items, loc)
	return lo.Map(rows, func(row dashboard.Row, i int) pageRow {
		return pageRow{Row: row, Hidden: !f.Match(items[i])}
	})
}

// Index handles GET /. Query selectors only set the initial filter; later
// changes are applied client-side against the snapshot read here.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	f := filtersFrom(r)
	state := h.mount(r.Context(), f)

	data := pageData{
		Title:           h.opts.Title,
		StatusOptions:   selectOptions("Status", models.Statuses, f.Status),
		PriorityOptions: selectOptions("Priority", models.Priorities, f.Priority),
		Rows:            pageRows(state, h.opts.Location),
		ShowEmpty:       state.ShowEmpty(),
		EmptyMessage:    dashboard.EmptyMessage,
		MenuGlyph:       dashboard.MenuGlyph,
		Headers:         dashboard.Headers,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		getLog().Error().Err(err).Msg("Failed to render dashboard")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
