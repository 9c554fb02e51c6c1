// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/rs/zerolog"
)

func TestStaticLoggerGetters(t *testing.T) {
	var buf bytes.Buffer
	SetGlobal(NewManagerWithWriter(&config.LogConfig{
		Level: "info",
		Levels: map[string]string{
			"dashboard": "debug",
			"store":     "trace",
			"tui":       "error",
			"api":       "warn",
			"telemetry": "info",
		},
	}, &buf))
	defer CloseGlobal()

	tests := []struct {
		name          string
		getterFunc    func() zerolog.Logger
		expectedPkg   string
		expectedLevel zerolog.Level
	}{
		{"dashboard", GetDashboardLogger, "dashboard", zerolog.DebugLevel},
		{"store", GetStoreLogger, "store", zerolog.TraceLevel},
		{"tui", GetTUILogger, "tui", zerolog.ErrorLevel},
		{"api", GetAPILogger, "api", zerolog.WarnLevel},
		{"telemetry", GetTelemetryLogger, "telemetry", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.getterFunc()
			if l.GetLevel() != tt.expectedLevel {
				t.Errorf("expected level %v, got %v", tt.expectedLevel, l.GetLevel())
			}

			buf.Reset()
			l.Error().Msg("component check")

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("failed to parse log JSON: %v", err)
			}
			if entry["pkg"] != tt.expectedPkg {
				t.Errorf("expected pkg %q, got %v", tt.expectedPkg, entry["pkg"])
			}
		})
	}
}
