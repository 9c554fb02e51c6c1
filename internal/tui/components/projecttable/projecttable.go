// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projecttable renders the wide-terminal project table.
package projecttable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/tui/components/badge"
	"github.com/noldarim/trackboard/internal/tui/layout"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(layout.SecondaryColor).
			Bold(true).
			Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	menuStyle  = cellStyle.Foreground(layout.MutedColor)
	menuColumn = len(dashboard.Headers) - 1
)

// Cells returns the table cells for a row in header order.
func Cells(r dashboard.Row) []string {
	return []string{
		r.Work,
		badge.Priority(r.Priority),
		badge.Status(r.Status),
		r.CreatedLabel(),
		r.UpdatedLabel(),
		dashboard.MenuGlyph,
	}
}

// Render lays rows out in a bordered table no wider than width. A width of
// zero leaves the table at its natural size.
func Render(rows []dashboard.Row, width int) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, Cells(r))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(layout.BorderColor)).
		BorderRow(false).
		Headers(dashboard.Headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == menuColumn:
				return menuStyle
			default:
				return cellStyle
			}
		})

	if width > 0 {
		t = t.Width(width)
	}
	return t.Render()
}
