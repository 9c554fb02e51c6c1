// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import "github.com/noldarim/trackboard/internal/models"

// Tone is the color family a badge or icon renders in. Each front end maps
// tones onto its own palette.
type Tone string

const (
	ToneGreen  Tone = "green"
	TonePurple Tone = "purple"
	ToneBlue   Tone = "blue"
	ToneYellow Tone = "yellow"
	ToneOrange Tone = "orange"
	ToneGray   Tone = "gray"
)

// Icon names the priority glyph.
type Icon string

const (
	IconArrowUp Icon = "arrow-up"
	IconEqual   Icon = "equal"
)

// Glyph returns the terminal rendering of the icon.
func (i Icon) Glyph() string {
	if i == IconArrowUp {
		return "↑"
	}
	return "="
}

// StatusStyle is the badge style for a status. Fallback is set for values
// outside the known set.
type StatusStyle struct {
	Tone     Tone   `json:"tone"`
	Class    string `json:"class"`
	Fallback bool   `json:"fallback"`
}

// PriorityStyle is the icon and color pair for a priority.
type PriorityStyle struct {
	Icon     Icon   `json:"icon"`
	Tone     Tone   `json:"tone"`
	Class    string `json:"class"`
	Fallback bool   `json:"fallback"`
}

func badgeClass(t Tone) string {
	return "badge badge-" + string(t)
}

// StatusStyleFor classifies s into one of five badge styles.
func StatusStyleFor(s models.Status) StatusStyle {
	var tone Tone
	switch s {
	case models.StatusToDo:
		tone = ToneGreen
	case models.StatusPaused:
		tone = TonePurple
	case models.StatusCompleted:
		tone = ToneBlue
	case models.StatusInProgress:
		tone = ToneYellow
	default:
		return StatusStyle{Tone: ToneGray, Class: badgeClass(ToneGray), Fallback: true}
	}
	return StatusStyle{Tone: tone, Class: badgeClass(tone)}
}

// PriorityStyleFor classifies p. High gets an up arrow; Medium and Low an
// equals sign in orange and gray. Unknown values share Low's look but are
// flagged as fallback.
func PriorityStyleFor(p models.Priority) PriorityStyle {
	switch p {
	case models.PriorityHigh:
		return PriorityStyle{Icon: IconArrowUp, Tone: ToneOrange, Class: "icon-orange"}
	case models.PriorityMedium:
		return PriorityStyle{Icon: IconEqual, Tone: ToneOrange, Class: "icon-orange"}
	case models.PriorityLow:
		return PriorityStyle{Icon: IconEqual, Tone: ToneGray, Class: "icon-gray"}
	default:
		return PriorityStyle{Icon: IconEqual, Tone: ToneGray, Class: "icon-gray", Fallback: true}
	}
}
