// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/tui/components/badge"
)

// Style defines the visual appearance of a card
type Style struct {
	BorderColor lipgloss.Color
	BorderStyle lipgloss.Border
	Padding     []int // [top, right, bottom, left]
	Margin      []int // [top, right, bottom, left]
	TitleColor  lipgloss.Color
	TitleBold   bool
	Width       int
}

// DefaultStyle returns the style used for project cards
func DefaultStyle() Style {
	return Style{
		BorderColor: lipgloss.Color("240"),
		BorderStyle: lipgloss.RoundedBorder(),
		Padding:     []int{0, 1, 0, 1},
		Margin:      []int{0, 0, 1, 0},
		TitleColor:  lipgloss.Color("86"),
		TitleBold:   true,
	}
}

// Render creates a bordered card with optional title
func Render(title, content string, style Style) string {
	body := content
	if title != "" {
		titleRendered := lipgloss.NewStyle().
			Foreground(style.TitleColor).
			Bold(style.TitleBold).
			Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, titleRendered, "", content)
	}

	paddedStyle := lipgloss.NewStyle()
	if len(style.Padding) == 4 {
		paddedStyle = paddedStyle.Padding(style.Padding[0], style.Padding[1], style.Padding[2], style.Padding[3])
	}

	// Width on a bordered style excludes the border itself
	borderStyle := lipgloss.NewStyle().
		Border(style.BorderStyle).
		BorderForeground(style.BorderColor)
	if style.Width > 2 {
		borderStyle = borderStyle.Width(style.Width - 2)
	}
	bordered := borderStyle.Render(paddedStyle.Render(body))

	marginStyle := lipgloss.NewStyle()
	if len(style.Margin) == 4 {
		marginStyle = marginStyle.Margin(style.Margin[0], style.Margin[1], style.Margin[2], style.Margin[3])
	}
	return marginStyle.Render(bordered)
}

// RenderProject renders one project as a stacked card for narrow terminals.
// The title line carries the work text and the inert menu glyph.
func RenderProject(row dashboard.Row, width int) string {
	style := DefaultStyle()
	style.Width = width

	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	lines := []string{
		badge.Status(row.Status) + "  " + badge.Priority(row.Priority),
		label.Render("Created") + row.CreatedLabel(),
		label.Render("Updated") + row.UpdatedLabel(),
	}

	return Render(titleLine(row.Work, width), strings.Join(lines, "\n"), style)
}

// titleLine right-aligns the menu glyph inside the card's inner width.
func titleLine(work string, width int) string {
	inner := width - 4
	if inner < 4 {
		return work + " " + dashboard.MenuGlyph
	}
	workWidth := inner - 2
	w := lipgloss.NewStyle().Width(workWidth).Render(work)
	return lipgloss.JoinHorizontal(lipgloss.Top, w, " ", dashboard.MenuGlyph)
}

// RenderProjects stacks a card per row.
func RenderProjects(rows []dashboard.Row, width int) string {
	cards := make([]string, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, RenderProject(r, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
