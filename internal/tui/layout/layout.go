// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the narrowest terminal the cards still fit in
	MinimumWidth = 40
	// MinimumHeight covers header, footer and a few content lines
	MinimumHeight = 10
)

// LayoutInfo contains all the information needed to render a layout
type LayoutInfo struct {
	Title string
	// Filters is a pre-rendered filter bar shown under the title.
	Filters   string
	Status    string
	HelpItems []HelpItem
}

// Dimensions represents the available space for content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks if the terminal has enough space to render properly
func ValidateSpace(width, height int) Dimensions {
	if width < MinimumWidth {
		return Dimensions{
			Width:  width,
			Height: height,
			Error:  fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth),
		}
	}

	if height < MinimumHeight {
		return Dimensions{
			Width:  width,
			Height: height,
			Error:  fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight),
		}
	}

	return Dimensions{Width: width, Height: height, Valid: true}
}

// RenderLayout combines header, content, and footer into a complete layout.
// Returns an error view if the terminal is too small.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims.Error, width, height)
	}

	header := RenderHeader(info, width)
	footer := RenderFooter(info.HelpItems, width)

	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	// MaxHeight enforces the ceiling, Height pads short content
	styledContent := lipgloss.NewStyle().
		Width(width).
		MaxHeight(contentHeight).
		Height(contentHeight).
		Align(lipgloss.Left, lipgloss.Top).
		Render(content)

	if footer == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, styledContent)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, styledContent, footer)
}

// GetContentArea calculates the width and height left for content
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	used := lipgloss.Height(RenderHeader(info, totalWidth))
	if len(info.HelpItems) > 0 {
		used += lipgloss.Height(RenderFooter(info.HelpItems, totalWidth))
	}

	contentHeight := totalHeight - used
	if contentHeight < 1 {
		contentHeight = 1
	}

	return Dimensions{Width: totalWidth, Height: contentHeight, Valid: true}
}

func renderSpaceError(message string, width, height int) string {
	errorStyle := ErrorStyle.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height)

	lines := []string{
		"⚠ Terminal Too Small ⚠",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
		"",
		"Please resize your terminal",
	}

	return errorStyle.Render(strings.Join(lines, "\n"))
}
