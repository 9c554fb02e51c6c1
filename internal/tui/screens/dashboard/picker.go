// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	core "github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/models"
	"github.com/noldarim/trackboard/internal/tui/components/filterbar"
	"github.com/noldarim/trackboard/internal/tui/messages"
)

// picker is the filter form. The draft lives behind a pointer so the huh
// bindings survive the Model being copied on every Update.
type picker struct {
	form  *huh.Form
	draft *filterDraft
}

type filterDraft struct {
	Status   string
	Priority string
}

func newPicker(current core.Filters, width int) *picker {
	d := &filterDraft{}
	// Values outside the enumerations have no option; start from Any.
	if current.Status.Known() {
		d.Status = string(current.Status)
	}
	if current.Priority.Known() {
		d.Priority = string(current.Priority)
	}

	statusOpts := []huh.Option[string]{huh.NewOption(filterbar.AnyLabel, "")}
	for _, s := range models.Statuses {
		statusOpts = append(statusOpts, huh.NewOption(string(s), string(s)))
	}
	priorityOpts := []huh.Option[string]{huh.NewOption(filterbar.AnyLabel, "")}
	for _, p := range models.Priorities {
		priorityOpts = append(priorityOpts, huh.NewOption(string(p), string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("status").
				Title("Status").
				Options(statusOpts...).
				Value(&d.Status),
			huh.NewSelect[string]().
				Key("priority").
				Title("Priority").
				Options(priorityOpts...).
				Value(&d.Priority),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)

	if width > 0 {
		form = form.WithWidth(width)
	}

	return &picker{form: form, draft: d}
}

func (p *picker) filters() core.Filters {
	return core.Filters{
		Status:   models.Status(p.draft.Status),
		Priority: models.Priority(p.draft.Priority),
	}
}

// update forwards msg to the form and reports the picked filters once the
// form completes.
func (p *picker) update(msg tea.Msg) tea.Cmd {
	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	switch p.form.State {
	case huh.StateCompleted:
		picked := p.filters()
		return func() tea.Msg { return messages.FiltersPickedMsg{Filters: picked} }
	case huh.StateAborted:
		return func() tea.Msg { return messages.PickerClosedMsg{} }
	}
	return cmd
}

func (p *picker) view() string {
	return p.form.View()
}
