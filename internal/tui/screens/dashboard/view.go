// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	core "github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/tui/components/card"
	"github.com/noldarim/trackboard/internal/tui/components/projecttable"
	"github.com/noldarim/trackboard/internal/tui/layout"
)

// View renders the dashboard screen
func (m Model) View() string {
	return layout.RenderLayout(m.viewport.View(), m.GetLayoutInfo(), m.width, m.height)
}

// refresh resizes the viewport to the content area and re-renders into it.
// Called after every state, size or picker change since the footer height
// depends on whether the picker is open.
func (m *Model) refresh() {
	if dims := layout.GetContentArea(m.GetLayoutInfo(), m.width, m.height); dims.Valid {
		m.viewport.Width = dims.Width
		m.viewport.Height = dims.Height
	}
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	switch {
	case m.picker != nil:
		return card.Render("Filter projects", m.picker.view(), card.DefaultStyle())
	case m.state.Loading():
		return layout.NoticeStyle.Render(m.spinner.View() + " " + core.LoadingMessage)
	case m.state.ShowEmpty():
		return layout.NoticeStyle.Render(core.EmptyMessage)
	}

	rows := core.Rows(m.state.Visible(), m.opts.Location)
	if m.Wide() {
		return projecttable.Render(rows, m.viewport.Width)
	}
	return card.RenderProjects(rows, m.viewport.Width)
}
