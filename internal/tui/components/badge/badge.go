// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package badge renders status badges and priority icons in the tone the
// dashboard classification picks.
package badge

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/models"
)

var tones = map[dashboard.Tone]lipgloss.Color{
	dashboard.ToneGreen:  lipgloss.Color("#10B981"),
	dashboard.TonePurple: lipgloss.Color("#A78BFA"),
	dashboard.ToneBlue:   lipgloss.Color("#60A5FA"),
	dashboard.ToneYellow: lipgloss.Color("#FACC15"),
	dashboard.ToneOrange: lipgloss.Color("#F97316"),
	dashboard.ToneGray:   lipgloss.Color("#9CA3AF"),
}

// Color returns the terminal color for a tone. Unmapped tones are gray.
func Color(t dashboard.Tone) lipgloss.Color {
	if c, ok := tones[t]; ok {
		return c
	}
	return tones[dashboard.ToneGray]
}

// Status renders s as a bracketed badge. Values outside the known set keep
// their raw text and render in the fallback style.
func Status(s models.Status) string {
	st := dashboard.StatusStyleFor(s)
	style := lipgloss.NewStyle().Foreground(Color(st.Tone)).Bold(!st.Fallback)
	if st.Fallback {
		style = style.Italic(true)
	}
	return style.Render("[" + s.String() + "]")
}

// Priority renders the priority icon followed by its name.
func Priority(p models.Priority) string {
	ps := dashboard.PriorityStyleFor(p)
	icon := lipgloss.NewStyle().Foreground(Color(ps.Tone)).Bold(true).Render(ps.Icon.Glyph())
	return icon + " " + p.String()
}
