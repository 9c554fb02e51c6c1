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
	"github.com/noldarim/trackboard/internal/server"
)

type serveOptions struct {
	configPath string
	host       string
	port       int
}

func serveCommand(args []string, stderr io.Writer) error {
	opts := &serveOptions{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to config file")
	fs.StringVar(&opts.host, "host", "", "Listen host (overrides server.host)")
	fs.IntVar(&opts.port, "port", 0, "Listen port (overrides server.port)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, bootstrapOptions{configPath: opts.configPath, metrics: true})
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg.Server
	if opts.host != "" {
		cfg.Host = opts.host
	}
	if opts.port != 0 {
		cfg.Port = opts.port
	}

	mainLog := logger.GetLogger("main")
	mainLog.Info().Str("driver", a.cfg.Datastore.Driver).Msg("Starting trackboard web dashboard")

	srv := server.New(&cfg, a.store, server.Options{
		Title:    a.cfg.Dashboard.Title,
		Location: a.location,
		Timeout:  a.cfg.Datastore.Timeout,
		Registry: a.registry,
	})
	if err := srv.Run(ctx); err != nil {
		mainLog.Error().Err(err).Msg("Server error")
		return err
	}

	mainLog.Info().Msg("Web dashboard shut down")
	return nil
}
