// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/trackboard/internal/dashboard"
	"github.com/noldarim/trackboard/internal/logger"
	screen "github.com/noldarim/trackboard/internal/tui/screens/dashboard"
)

// Options configures the terminal dashboard.
type Options = screen.Options

// StartTUI runs the dashboard until the user quits or ctx is cancelled.
// Cancelling ctx also abandons a mount read still in flight.
func StartTUI(ctx context.Context, src dashboard.Source, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.GetTUILogger()
	log.Info().Str("title", opts.Title).Msg("Starting TUI")

	p := tea.NewProgram(
		screen.NewModel(ctx, src, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info().Msg("TUI stopped by context")
		return nil
	}
	return err
}

// PrintError writes a red error line. Used for failures before the
// program takes over the terminal.
func PrintError(w io.Writer, err error) {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fmt.Fprintf(w, "\n%s\n\n", style.Render("ERROR: "+err.Error()))
}
