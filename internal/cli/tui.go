// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/noldarim/trackboard/internal/logger"
	"github.com/noldarim/trackboard/internal/tui"
)

func tuiCommand(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, bootstrapOptions{configPath: *configPath})
	if err != nil {
		return err
	}
	defer a.close()

	log := logger.GetTUILogger()
	log.Info().Str("driver", a.cfg.Datastore.Driver).Msg("Opening terminal dashboard")

	return tui.StartTUI(ctx, a.store, tui.Options{
		Title:        a.cfg.Dashboard.Title,
		Location:     a.location,
		WideMinWidth: a.cfg.Dashboard.WideMinWidth,
		Timeout:      a.cfg.Datastore.Timeout,
	})
}
