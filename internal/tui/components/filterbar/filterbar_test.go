// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package filterbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/models"
)

func TestRender(t *testing.T) {
	unset := Render(dashboard.Filters{}, 0)
	assert.Equal(t, 2, strings.Count(unset, AnyLabel))

	active := Render(dashboard.Filters{Status: models.StatusPaused, Priority: models.PriorityLow}, 0)
	assert.Contains(t, active, "PAUSED")
	assert.Contains(t, active, "Low")
	assert.NotContains(t, active, AnyLabel)

	half := Render(dashboard.Filters{Priority: models.PriorityHigh}, 80)
	assert.Contains(t, half, "Status: "+AnyLabel)
	assert.Contains(t, half, "High")
}
