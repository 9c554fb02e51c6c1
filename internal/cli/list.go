// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type listOptions struct {
	configPath string
	status     string
	priority   string
}

func listCommand(args []string, stdout, stderr io.Writer) error {
	opts := &listOptions{}
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.status, "status", "", `Only show this status ("TO DO", PAUSED, COMPLETED, "IN PROGRESS")`)
	fs.StringVar(&opts.priority, "priority", "", "Only show this priority (High, Medium, Low)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, err := bootstrap(ctx, bootstrapOptions{configPath: opts.configPath})
	if err != nil {
		return err
	}
	defer a.close()

	state := dashboard.NewState()
	state.Settle(dashboard.LoadWithTimeout(ctx, a.store, a.cfg.Datastore.Timeout))
	state.SetFilters(dashboard.Filters{
		Status:   models.Status(opts.status),
		Priority: models.Priority(opts.priority),
	})

	printProjects(stdout, state, a.location)
	return nil
}

// printProjects writes the visible rows as a plain table, or the
// empty-state message.
func printProjects(w io.Writer, state dashboard.State, loc *time.Location) {
	if state.ShowEmpty() {
		fmt.Fprintln(w, dashboard.EmptyMessage)
		return
	}

	rows := dashboard.Rows(state.Visible(), loc)
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Work,
			r.PriorityStyle.Icon.Glyph() + " " + r.Priority.String(),
			r.Status.String(),
			r.CreatedLabel(),
			r.UpdatedLabel(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(false).
		Headers(dashboard.Headers[:len(dashboard.Headers)-1]...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d of %d projects\n", len(rows), state.Total())
}
