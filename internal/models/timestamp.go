// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"strings"
	"time"
)

// Layouts carrying an explicit offset. Postgres renders timestamptz with a
// bare hour offset ("+00"), hence the Z07 variants.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
}

// Layouts without an offset are read as wall time in the target location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses an ISO 8601 timestamp as stored by the data store
// and converts it to loc. A nil loc means UTC. Date-only values are
// midnight UTC.
func ParseTimestamp(ts string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, ts); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// NewestFirst orders projects by created_at descending. Unparseable
// timestamps sort after every parseable one and keep their relative order.
func NewestFirst(a, b Project) int {
	ta, okA := ParseTimestamp(a.CreatedAt, nil)
	tb, okB := ParseTimestamp(b.CreatedAt, nil)
	switch {
	case okA && okB:
		return tb.Compare(ta)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
