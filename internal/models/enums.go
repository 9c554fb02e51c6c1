// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

// Priority is the raw priority label of a project. Values outside the known
// set are carried verbatim and classify as KindUnknown.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists the known priorities in selector order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Status is the raw status label of a project.
type Status string

const (
	StatusToDo       Status = "TO DO"
	StatusPaused     Status = "PAUSED"
	StatusCompleted  Status = "COMPLETED"
	StatusInProgress Status = "IN PROGRESS"
)

// Statuses lists the known statuses in selector order.
var Statuses = []Status{StatusToDo, StatusPaused, StatusCompleted, StatusInProgress}

// Kind classifies a raw enum value.
type Kind int

const (
	KindUnknown Kind = iota
	KindKnown
)

// String returns the string representation of Kind
func (k Kind) String() string {
	if k == KindKnown {
		return "known"
	}
	return "unknown"
}

// Kind reports whether p is one of the enumerated priorities.
func (p Priority) Kind() Kind {
	for _, known := range Priorities {
		if p == known {
			return KindKnown
		}
	}
	return KindUnknown
}

// Known is shorthand for p.Kind() == KindKnown.
func (p Priority) Known() bool { return p.Kind() == KindKnown }

func (p Priority) String() string { return string(p) }

// Kind reports whether s is one of the enumerated statuses.
func (s Status) Kind() Kind {
	for _, known := range Statuses {
		if s == known {
			return KindKnown
		}
	}
	return KindUnknown
}

// Known is shorthand for s.Kind() == KindKnown.
func (s Status) Known() bool { return s.Kind() == KindKnown }

func (s Status) String() string { return string(s) }
