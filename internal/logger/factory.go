// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels
// These ensure consistent logger names across the codebase

// GetDashboardLogger returns a logger for the mount read and filtering
func GetDashboardLogger() zerolog.Logger {
	return GetLogger("dashboard")
}

// GetStoreLogger returns a logger for datastore drivers
func GetStoreLogger() zerolog.Logger {
	return GetLogger("store")
}

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}

// GetAPILogger returns a logger for the HTTP server
func GetAPILogger() zerolog.Logger {
	return GetLogger("api")
}

// GetTelemetryLogger returns a logger for tracing setup and exporter errors
func GetTelemetryLogger() zerolog.Logger {
	return GetLogger("telemetry")
}
