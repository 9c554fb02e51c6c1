// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key         string
	Description string
}

// RenderHeader creates a header with the title, the filter line and an
// optional status line
func RenderHeader(info LayoutInfo, width int) string {
	var header strings.Builder

	header.WriteString(TitleStyle.Render(info.Title))

	if info.Filters != "" {
		header.WriteString("\n")
		header.WriteString(info.Filters)
	}

	if info.Status != "" {
		header.WriteString("\n")
		header.WriteString(StatsStyle.Render(info.Status))
	}

	header.WriteString("\n")
	header.WriteString(GetDivider(width))

	return header.String()
}

// RenderFooter creates a footer with help items
func RenderFooter(helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}

	helpTexts := make([]string, 0, len(helpItems))
	for _, item := range helpItems {
		helpTexts = append(helpTexts, fmt.Sprintf("[%s] %s",
			HelpKeyStyle.Render(item.Key),
			HelpTextStyle.Render(item.Description)))
	}

	// Let lipgloss wrap long help lines
	return FooterStyle.Width(width).Render(strings.Join(helpTexts, " • "))
}
