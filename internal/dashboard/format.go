// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"time"

	"github.com/noldarim/trackboard/internal/models"
)

// DisplayDateLayout renders dates as "Mar 5, 2024".
const DisplayDateLayout = "Jan 2, 2006"

// InvalidDate is shown for timestamps that cannot be parsed.
const InvalidDate = "Invalid Date"

// FormatDate renders an ISO 8601 timestamp in loc. A nil loc means UTC.
func FormatDate(ts string, loc *time.Location) string {
	t, ok := models.ParseTimestamp(ts, loc)
	if !ok {
		return InvalidDate
	}
	return t.Format(DisplayDateLayout)
}
