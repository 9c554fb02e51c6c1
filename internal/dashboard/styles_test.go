// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"testing"
	"time"

	"github.com/noldarim/trackboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestStatusStyleFor(t *testing.T) {
	tests := []struct {
		status   models.Status
		tone     Tone
		fallback bool
	}{
		{models.StatusToDo, ToneGreen, false},
		{models.StatusPaused, TonePurple, false},
		{models.StatusCompleted, ToneBlue, false},
		{models.StatusInProgress, ToneYellow, false},
		{"BLOCKED", ToneGray, true},
		{"", ToneGray, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := StatusStyleFor(tt.status)
			assert.Equal(t, tt.tone, got.Tone)
			assert.Equal(t, tt.fallback, got.Fallback)
			assert.Equal(t, "badge badge-"+string(tt.tone), got.Class)
		})
	}
}

func TestPriorityStyleFor(t *testing.T) {
	high := PriorityStyleFor(models.PriorityHigh)
	assert.Equal(t, IconArrowUp, high.Icon)
	assert.Equal(t, ToneOrange, high.Tone)
	assert.Equal(t, "↑", high.Icon.Glyph())

	medium := PriorityStyleFor(models.PriorityMedium)
	assert.Equal(t, IconEqual, medium.Icon)
	assert.Equal(t, ToneOrange, medium.Tone)

	low := PriorityStyleFor(models.PriorityLow)
	assert.Equal(t, IconEqual, low.Icon)
	assert.Equal(t, ToneGray, low.Tone)
	assert.False(t, low.Fallback)

	unknown := PriorityStyleFor("Urgent")
	assert.Equal(t, ToneGray, unknown.Tone)
	assert.True(t, unknown.Fallback)
	assert.Equal(t, "=", unknown.Icon.Glyph())
}

func TestNewRow(t *testing.T) {
	actor := "maria"
	p := models.Project{
		ID:        "p1",
		Work:      "Ship it",
		Priority:  models.PriorityHigh,
		Status:    models.StatusToDo,
		CreatedAt: "2024-03-05T00:00:00Z",
		UpdatedAt: "not a date",
		CreatedBy: &actor,
	}

	row := NewRow(p, time.UTC)
	assert.Equal(t, "Mar 5, 2024", row.Created)
	assert.Equal(t, InvalidDate, row.Updated)
	assert.Equal(t, "Mar 5, 2024 · maria", row.CreatedLabel())
	assert.Equal(t, InvalidDate, row.UpdatedLabel())
	assert.Equal(t, ToneGreen, row.StatusStyle.Tone)
	assert.Equal(t, IconArrowUp, row.PriorityStyle.Icon)
}

func TestRows(t *testing.T) {
	rows := Rows([]models.Project{{ID: "a"}, {ID: "b"}}, nil)
	assert.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Empty(t, Rows(nil, nil))
}
