// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"testing"

	"github.com/noldarim/trackboard/internal/models"
	"github.com/noldarim/trackboard/test/testutil"

	"github.com/stretchr/testify/assert"
)

func ids(items []models.Project) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func TestDerive(t *testing.T) {
	items := testutil.SampleProjects()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name: "no filters returns everything in order",
			want: []string{"p1", "p2", "p3", "p4", "p5"},
		},
		{
			name:    "status only",
			filters: Filters{Status: models.StatusToDo},
			want:    []string{"p1", "p2"},
		},
		{
			name:    "priority only",
			filters: Filters{Priority: models.PriorityHigh},
			want:    []string{"p1", "p4"},
		},
		{
			name:    "both predicates",
			filters: Filters{Status: models.StatusToDo, Priority: models.PriorityHigh},
			want:    []string{"p1"},
		},
		{
			name:    "no match",
			filters: Filters{Status: models.StatusPaused, Priority: models.PriorityLow},
			want:    []string{},
		},
		{
			name:    "unknown raw value only matches identical raw value",
			filters: Filters{Status: "BLOCKED"},
			want:    []string{"p5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(items, tt.filters)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestDerive_StatusScenario(t *testing.T) {
	items := []models.Project{
		{ID: "a", Status: models.StatusToDo},
		{ID: "b", Status: models.StatusToDo},
		{ID: "c", Status: models.StatusCompleted},
	}
	assert.Len(t, Derive(items, Filters{Status: models.StatusToDo}), 2)
}

func TestDerive_EveryItemSatisfiesPredicates(t *testing.T) {
	items := testutil.SampleProjects()
	for _, s := range append([]models.Status{""}, models.Statuses...) {
		for _, p := range append([]models.Priority{""}, models.Priorities...) {
			f := Filters{Status: s, Priority: p}
			got := Derive(items, f)

			expected := 0
			for _, item := range items {
				if f.Match(item) {
					expected++
				}
			}
			assert.Len(t, got, expected, "filters %+v", f)
			for _, item := range got {
				assert.True(t, s == "" || item.Status == s)
				assert.True(t, p == "" || item.Priority == p)
			}
		}
	}
}

func TestDerive_DoesNotAliasInput(t *testing.T) {
	items := testutil.SampleProjects()
	got := Derive(items, Filters{})
	got[0].Work = "changed"
	assert.NotEqual(t, "changed", items[0].Work)
}

func TestDerive_NilInput(t *testing.T) {
	got := Derive(nil, Filters{Status: models.StatusToDo})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFiltersActive(t *testing.T) {
	assert.False(t, Filters{}.Active())
	assert.True(t, Filters{Status: models.StatusPaused}.Active())
	assert.True(t, Filters{Priority: models.PriorityLow}.Active())
}

func TestNextStatus(t *testing.T) {
	seq := []models.Status{""}
	cur := models.Status("")
	for i := 0; i < len(models.Statuses)+1; i++ {
		cur = NextStatus(cur)
		seq = append(seq, cur)
	}
	assert.Equal(t, []models.Status{
		"", models.StatusToDo, models.StatusPaused, models.StatusCompleted, models.StatusInProgress, "",
	}, seq)
	assert.Equal(t, models.Status(""), NextStatus("BLOCKED"))
}

func TestNextPriority(t *testing.T) {
	assert.Equal(t, models.PriorityHigh, NextPriority(""))
	assert.Equal(t, models.PriorityMedium, NextPriority(models.PriorityHigh))
	assert.Equal(t, models.PriorityLow, NextPriority(models.PriorityMedium))
	assert.Equal(t, models.Priority(""), NextPriority(models.PriorityLow))
	assert.Equal(t, models.Priority(""), NextPriority("Urgent"))
}
