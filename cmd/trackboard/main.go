// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"os"

	"github.com/noldarim/trackboard/internal/cli"
	"github.com/noldarim/trackboard/internal/tui"
)

func main() {
	if err := cli.Execute(); err != nil {
		tui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
