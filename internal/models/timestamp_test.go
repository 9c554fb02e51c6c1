// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	ts, ok := ParseTimestamp("2024-03-05T12:30:00Z", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 12, ts.Hour())

	ts, ok = ParseTimestamp("2024-03-05 12:30:00.5+02", nil)
	require.True(t, ok)
	assert.Equal(t, 10, ts.Hour())

	_, ok = ParseTimestamp("   ", time.UTC)
	assert.False(t, ok)

	_, ok = ParseTimestamp("03/05/2024", time.UTC)
	assert.False(t, ok)
}

func TestNewestFirst(t *testing.T) {
	items := []Project{
		{ID: "old", CreatedAt: "2023-01-01T00:00:00Z"},
		{ID: "bad", CreatedAt: "nope"},
		{ID: "new", CreatedAt: "2024-06-01T00:00:00Z"},
		{ID: "mid", CreatedAt: "2024-01-01 00:00:00+00"},
	}
	slices.SortStableFunc(items, NewestFirst)

	got := make([]string, 0, len(items))
	for _, p := range items {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"new", "mid", "old", "bad"}, got)
}
