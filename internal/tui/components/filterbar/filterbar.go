// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package filterbar renders the two filter selectors as a one-line bar.
package filterbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/tui/layout"
)

// AnyLabel is shown for an unset selector.
const AnyLabel = "Any"

var (
	labelStyle  = lipgloss.NewStyle().Foreground(layout.MutedColor)
	unsetStyle  = lipgloss.NewStyle().Foreground(layout.MutedColor).Italic(true)
	activeStyle = lipgloss.NewStyle().
			Foreground(layout.TextColor).
			Background(layout.PrimaryColor).
			Padding(0, 1)
)

func chip(value string) string {
	if value == "" {
		return unsetStyle.Render(AnyLabel)
	}
	return activeStyle.Render(value)
}

// Render returns "Status: <v>  Priority: <v>", truncated to width.
func Render(f dashboard.Filters, width int) string {
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Status: "), chip(f.Status.String()),
		"   ",
		labelStyle.Render("Priority: "), chip(f.Priority.String()),
	)
	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(bar)
	}
	return bar
}
