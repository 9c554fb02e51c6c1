// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"time"

	"github.com/noldarim/trackboard/internal/models"

	"github.com/samber/lo"
)

// MenuGlyph is the per-row menu affordance. It is drawn but bound to nothing.
const MenuGlyph = "⋮"

// Row is a project prepared for display by any front end.
type Row struct {
	ID            string          `json:"id"`
	Work          string          `json:"work"`
	Status        models.Status   `json:"status"`
	StatusStyle   StatusStyle     `json:"status_style"`
	Priority      models.Priority `json:"priority"`
	PriorityStyle PriorityStyle   `json:"priority_style"`
	Created       string          `json:"created"`
	Updated       string          `json:"updated"`
	CreatedBy     string          `json:"created_by,omitempty"`
	UpdatedBy     string          `json:"updated_by,omitempty"`
}

// CreatedLabel is the created column text: the date, plus the actor when
// the store recorded one.
func (r Row) CreatedLabel() string { return withActor(r.Created, r.CreatedBy) }

// UpdatedLabel is the updated column text.
func (r Row) UpdatedLabel() string { return withActor(r.Updated, r.UpdatedBy) }

func withActor(date, actor string) string {
	if actor == "" {
		return date
	}
	return date + " · " + actor
}

// NewRow formats p for display in loc.
func NewRow(p models.Project, loc *time.Location) Row {
	return Row{
		ID:            p.ID,
		Work:          p.Work,
		Status:        p.Status,
		StatusStyle:   StatusStyleFor(p.Status),
		Priority:      p.Priority,
		PriorityStyle: PriorityStyleFor(p.Priority),
		Created:       FormatDate(p.CreatedAt, loc),
		Updated:       FormatDate(p.UpdatedAt, loc),
		CreatedBy:     models.Actor(p.CreatedBy),
		UpdatedBy:     models.Actor(p.UpdatedBy),
	}
}

// Rows formats every project in order.
func Rows(items []models.Project, loc *time.Location) []Row {
	return lo.Map(items, func(p models.Project, _ int) Row {
		return NewRow(p, loc)
	})
}

// Column headers shared by the terminal table, the web table and the list
// command.
var Headers = []string{"Work", "Priority", "Status", "Created", "Updated", ""}

// EmptyMessage is shown when the visible list is empty after loading.
const EmptyMessage = "No projects found matching the selected filters."

// LoadingMessage is shown until the mount read settles.
const LoadingMessage = "Loading..."

// DefaultTitle is the dashboard heading.
const DefaultTitle = "Project Management Dashboard"
