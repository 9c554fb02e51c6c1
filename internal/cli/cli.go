// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
)

const (
	appName    = "trackboard"
	appVersion = "0.1.0"
)

// Execute runs the CLI application
func Execute() error {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run dispatches args to a subcommand. With no arguments it starts the
// terminal dashboard.
func Run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return tuiCommand(nil, stderr)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "tui":
		return tuiCommand(rest, stderr)
	case "serve":
		return serveCommand(rest, stderr)
	case "list":
		return listCommand(rest, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "%s version %s\n", appName, appVersion)
		return nil
	case "help", "-h", "--help":
		return printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", command)
		return printUsage(stderr)
	}
}

func printUsage(w io.Writer) error {
	fmt.Fprintf(w, `%s - project tracking dashboard

Usage:
  %s [command] [arguments]

Commands:
  tui            Open the terminal dashboard (default)
  serve          Serve the web dashboard, JSON API and /metrics
  list           Print the projects once as a table
  version        Print version information
  help           Show this help message

Every command accepts --config <path>.

Examples:
  %s
  %s serve --port 9090
  %s list --status "IN PROGRESS" --priority High
  TRACKBOARD_DATASTORE_DRIVER=file TRACKBOARD_DATASTORE_PATH=projects.yaml %s

`, appName, appName, appName, appName, appName, appName)
	return nil
}
