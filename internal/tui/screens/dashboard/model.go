// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard is the single TUI screen: the filter bar over a table
// on wide terminals or stacked cards on narrow ones.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	core "github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/tui/components/filterbar"
	"github.com/noldarim/trackboard/internal/tui/layout"
	"github.com/noldarim/trackboard/internal/tui/messages"
)

// DefaultWideMinWidth is the terminal width from which the table replaces
// the cards.
const DefaultWideMinWidth = 100

// Options configures the screen.
type Options struct {
	Title        string
	Location     *time.Location
	WideMinWidth int
	// Timeout bounds the mount read. Zero waits for the store.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = core.DefaultTitle
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.WideMinWidth <= 0 {
		o.WideMinWidth = DefaultWideMinWidth
	}
	return o
}

// Model is the model for the dashboard screen.
type Model struct {
	ctx      context.Context
	src      core.Source
	opts     Options
	state    core.State
	spinner  spinner.Model
	viewport viewport.Model
	picker   *picker
	width    int
	height   int
}

// NewModel creates the screen. ctx bounds the mount read; src is read once
// by the command Init returns.
func NewModel(ctx context.Context, src core.Source, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = layout.StatsStyle

	m := Model{
		ctx:      ctx,
		src:      src,
		opts:     opts.withDefaults(),
		state:    core.NewState(),
		spinner:  s,
		viewport: viewport.New(80, 10),
	}
	m.SetSize(80, 24)
	return m
}

// Init starts the spinner and the mount read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch())
}

func (m Model) fetch() tea.Cmd {
	ctx, src, timeout := m.ctx, m.src, m.opts.Timeout
	return func() tea.Msg {
		return messages.ProjectsLoadedMsg{Result: core.LoadWithTimeout(ctx, src, timeout)}
	}
}

// State returns the dashboard state.
func (m Model) State() core.State { return m.state }

// Wide reports whether the table layout is in use.
func (m Model) Wide() bool { return m.width >= m.opts.WideMinWidth }

// PickerOpen reports whether the filter form is showing.
func (m Model) PickerOpen() bool { return m.picker != nil }

// GetLayoutInfo returns layout information for the dashboard screen
func (m Model) GetLayoutInfo() layout.LayoutInfo {
	var status string
	switch {
	case m.state.Loading():
		status = core.LoadingMessage
	case m.state.Filters().Active():
		status = fmt.Sprintf("Showing %d of %d projects", len(m.state.Visible()), m.state.Total())
	default:
		status = fmt.Sprintf("Total: %d projects", m.state.Total())
	}

	help := []layout.HelpItem{
		{Key: "s", Description: "status"},
		{Key: "p", Description: "priority"},
		{Key: "f", Description: "filters"},
		{Key: "x", Description: "clear"},
		{Key: "↑/↓", Description: "scroll"},
		{Key: "q", Description: "quit"},
	}
	if m.picker != nil {
		help = []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "apply"},
			{Key: "esc", Description: "cancel"},
		}
	}

	return layout.LayoutInfo{
		Title:     m.opts.Title,
		Filters:   filterbar.Render(m.state.Filters(), m.width),
		Status:    status,
		HelpItems: help,
	}
}

// SetSize updates the model's dimensions and re-renders the content
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refresh()
}
