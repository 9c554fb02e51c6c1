// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

func newTestAdapter(buf *bytes.Buffer, slow time.Duration) *GormLogAdapter {
	return NewGormLogAdapter(zerolog.New(buf).Level(zerolog.TraceLevel), slow)
}

func TestGormLogAdapter_ImplementsInterface(t *testing.T) {
	var _ gormlogger.Interface = NewGormLogAdapter(zerolog.Nop(), 0)
}

func TestGormLogAdapter_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM projects", 3 }

	t.Run("error is logged", func(t *testing.T) {
		var buf bytes.Buffer
		newTestAdapter(&buf, 0).Trace(context.Background(), time.Now(), query, errors.New("no such table"))
		out := buf.String()
		if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "no such table") {
			t.Errorf("expected error entry, got %q", out)
		}
		if !strings.Contains(out, "SELECT * FROM projects") {
			t.Errorf("expected sql in entry, got %q", out)
		}
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		newTestAdapter(&buf, 0).Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)
		if strings.Contains(buf.String(), `"level":"error"`) {
			t.Errorf("unexpected error entry: %q", buf.String())
		}
	})

	t.Run("slow query warns", func(t *testing.T) {
		var buf bytes.Buffer
		newTestAdapter(&buf, time.Millisecond).Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
		if !strings.Contains(buf.String(), "Slow query") {
			t.Errorf("expected slow query warning, got %q", buf.String())
		}
	})

	t.Run("fast query is quiet at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		newTestAdapter(&buf, time.Hour).Trace(context.Background(), time.Now(), query, nil)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("info mode logs every query", func(t *testing.T) {
		var buf bytes.Buffer
		a := newTestAdapter(&buf, 0).LogMode(gormlogger.Info)
		a.Trace(context.Background(), time.Now(), query, nil)
		if !strings.Contains(buf.String(), `"rows":3`) {
			t.Errorf("expected query entry, got %q", buf.String())
		}
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		a := newTestAdapter(&buf, 0).LogMode(gormlogger.Silent)
		a.Trace(context.Background(), time.Now(), query, errors.New("x"))
		a.Error(context.Background(), "boom %d", 1)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}

func TestGormLogAdapter_Messages(t *testing.T) {
	var buf bytes.Buffer
	a := newTestAdapter(&buf, 0)
	a.Info(context.Background(), "hidden %s", "info")
	a.Warn(context.Background(), "careful %s", "now")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("info should be filtered at warn mode: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "careful now") {
		t.Errorf("expected formatted warning, got %q", buf.String())
	}
}
