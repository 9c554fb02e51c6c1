// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"github.com/noldarim/trackboard/internal/models"
)

// Sample data creators for consistent testing

func strPtr(s string) *string { return &s }

// SampleProjects returns five projects ordered by created_at descending.
// p5 carries values outside the known status and priority sets.
func SampleProjects() []models.Project {
	return []models.Project{
		{
			ID:        "p1",
			Work:      "Migrate billing to the new provider",
			Priority:  models.PriorityHigh,
			Status:    models.StatusToDo,
			CreatedAt: "2024-03-05T00:00:00Z",
			UpdatedAt: "2024-03-06T09:30:00Z",
			CreatedBy: strPtr("ana"),
		},
		{
			ID:        "p2",
			Work:      "Refresh onboarding copy",
			Priority:  models.PriorityLow,
			Status:    models.StatusToDo,
			CreatedAt: "2024-03-04T12:00:00Z",
			UpdatedAt: "2024-03-04T12:00:00Z",
		},
		{
			ID:        "p3",
			Work:      "Quarterly security review",
			Priority:  models.PriorityMedium,
			Status:    models.StatusCompleted,
			CreatedAt: "2024-02-20T08:00:00Z",
			UpdatedAt: "2024-03-01T17:45:00Z",
			UpdatedBy: strPtr("li"),
		},
		{
			ID:        "p4",
			Work:      "Mobile checkout redesign",
			Priority:  models.PriorityHigh,
			Status:    models.StatusInProgress,
			CreatedAt: "2024-02-10T10:00:00Z",
			UpdatedAt: "2024-02-28T10:00:00Z",
		},
		{
			ID:        "p5",
			Work:      "Legacy import cleanup",
			Priority:  models.Priority("Urgent"),
			Status:    models.Status("BLOCKED"),
			CreatedAt: "2024-01-15T00:00:00Z",
			UpdatedAt: "garbage",
		},
	}
}

// SingleProject returns a single project for simpler tests
func SingleProject() models.Project {
	return models.Project{
		ID:        "single",
		Work:      "Single project",
		Priority:  models.PriorityMedium,
		Status:    models.StatusPaused,
		CreatedAt: "2024-03-05T00:00:00Z",
		UpdatedAt: "2024-03-05T00:00:00Z",
	}
}
