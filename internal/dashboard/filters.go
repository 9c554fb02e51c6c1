// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/noldarim/trackboard/internal/models"

	"github.com/samber/lo"
)

// Filters holds the two selector values. A zero field means unset.
type Filters struct {
	Status   models.Status   `json:"status"`
	Priority models.Priority `json:"priority"`
}

// Active reports whether either selector is set.
func (f Filters) Active() bool {
	return f.Status != "" || f.Priority != ""
}

// Match reports whether p passes both predicates.
func (f Filters) Match(p models.Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Priority != "" && p.Priority != f.Priority {
		return false
	}
	return true
}

// Derive returns the items passing f, preserving input order. It never
// returns nil so callers can range and len without checks.
func Derive(items []models.Project, f Filters) []models.Project {
	if !f.Active() {
		out := make([]models.Project, len(items))
		copy(out, items)
		return out
	}
	return lo.Filter(items, func(p models.Project, _ int) bool {
		return f.Match(p)
	})
}

// NextStatus advances the status selector one step:
// unset, TO DO, PAUSED, COMPLETED, IN PROGRESS, then back to unset.
func NextStatus(s models.Status) models.Status {
	idx := lo.IndexOf(models.Statuses, s)
	if idx < 0 && s != "" {
		return ""
	}
	if idx+1 >= len(models.Statuses) {
		return ""
	}
	return models.Statuses[idx+1]
}

// NextPriority advances the priority selector the same way NextStatus does.
func NextPriority(p models.Priority) models.Priority {
	idx := lo.IndexOf(models.Priorities, p)
	if idx < 0 && p != "" {
		return ""
	}
	if idx+1 >= len(models.Priorities) {
		return ""
	}
	return models.Priorities[idx+1]
}
