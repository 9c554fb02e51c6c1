// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	core "github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/logger"
	"github.com/noldarim/trackboard/internal/tui/messages"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log := logger.GetTUILogger().With().Str("component", "dashboard").Logger()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case messages.ProjectsLoadedMsg:
		m.state.Settle(msg.Result)
		log.Debug().
			Int("total", m.state.Total()).
			Bool("failed", msg.Result.Err != nil).
			Dur("duration", msg.Result.Duration).
			Msg("Mount read settled")
		m.refresh()
		return m, nil

	case messages.FiltersPickedMsg:
		m.picker = nil
		m.state.SetFilters(msg.Filters)
		m.refresh()
		return m, nil

	case messages.PickerClosedMsg:
		m.picker = nil
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s":
		m.state.SetStatusFilter(core.NextStatus(m.state.Filters().Status))
		m.refresh()
		return m, nil

	case "p":
		m.state.SetPriorityFilter(core.NextPriority(m.state.Filters().Priority))
		m.refresh()
		return m, nil

	case "x":
		m.state.ClearFilters()
		m.refresh()
		return m, nil

	case "f":
		m.picker = newPicker(m.state.Filters(), m.viewport.Width)
		m.refresh()
		return m, m.picker.form.Init()

	case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return m, func() tea.Msg { return messages.PickerClosedMsg{} }
	}
	cmd := m.picker.update(msg)
	m.refresh()
	return m, cmd
}
