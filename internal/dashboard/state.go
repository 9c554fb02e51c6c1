// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/noldarim/trackboard/internal/models"
)

// State is the per-mount dashboard state: the snapshot read at mount, the
// selector values and the derived visible list. Every mutation recomputes
// the visible list.
type State struct {
	items   []models.Project
	filters Filters
	visible []models.Project
	loading bool
}

// NewState returns a state waiting for its initial load.
func NewState() State {
	return State{
		items:   []models.Project{},
		visible: []models.Project{},
		loading: true,
	}
}

// Loaded replaces the snapshot with items and ends the loading phase.
func (s *State) Loaded(items []models.Project) {
	if items == nil {
		items = []models.Project{}
	}
	s.items = items
	s.loading = false
	s.recompute()
}

// Failed ends the loading phase with an empty snapshot. The error itself is
// reported by Load and never reaches the view.
func (s *State) Failed(error) {
	s.Loaded(nil)
}

// Settle applies the outcome of Load.
func (s *State) Settle(r LoadResult) {
	if r.Err != nil {
		s.Failed(r.Err)
		return
	}
	s.Loaded(r.Projects)
}

func (s *State) SetStatusFilter(v models.Status) {
	s.filters.Status = v
	s.recompute()
}

func (s *State) SetPriorityFilter(v models.Priority) {
	s.filters.Priority = v
	s.recompute()
}

// SetFilters sets both selectors at once.
func (s *State) SetFilters(f Filters) {
	s.filters = f
	s.recompute()
}

func (s *State) ClearFilters() {
	s.SetFilters(Filters{})
}

func (s *State) recompute() {
	s.visible = Derive(s.items, s.filters)
}

// Filters returns the current selector values.
func (s State) Filters() Filters { return s.filters }

// Items returns the unfiltered snapshot.
func (s State) Items() []models.Project { return s.items }

// Visible returns the filtered list in snapshot order.
func (s State) Visible() []models.Project { return s.visible }

// Loading reports whether the initial read is still pending.
func (s State) Loading() bool { return s.loading }

// ShowEmpty reports whether the empty-state message replaces the rows.
func (s State) ShowEmpty() bool { return !s.loading && len(s.visible) == 0 }

// Total is the size of the unfiltered snapshot.
func (s State) Total() int { return len(s.items) }
