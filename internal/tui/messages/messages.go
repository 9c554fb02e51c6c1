// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import "github.com/noldarim/trackboard/internal/dashboard"

// ProjectsLoadedMsg carries the outcome of the single mount read.
type ProjectsLoadedMsg struct {
	Result dashboard.LoadResult
}

// FiltersPickedMsg is sent when the filter picker form is submitted.
type FiltersPickedMsg struct {
	Filters dashboard.Filters
}

// PickerClosedMsg is sent when the filter picker is dismissed unchanged.
type PickerClosedMsg struct{}
