// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogAdapter adapts zerolog to GORM's logger interface
type GormLogAdapter struct {
	logger        zerolog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogAdapter creates a GORM logger writing through l. Queries slower
// than slow are logged at warn level; zero disables the check.
func NewGormLogAdapter(l zerolog.Logger, slow time.Duration) *GormLogAdapter {
	return &GormLogAdapter{
		logger:        l,
		level:         gormlogger.Warn,
		slowThreshold: slow,
	}
}

// LogMode returns a copy with the given GORM level
func (g *GormLogAdapter) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	c := *g
	c.level = level
	return &c
}

func (g *GormLogAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.logger.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.logger.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

func (g *GormLogAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.logger.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

// Trace logs a finished statement. Failed statements log at error, slow ones
// at warn and the rest at debug when the level is Info.
func (g *GormLogAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	withSQL := func(e *zerolog.Event) *zerolog.Event {
		sql, rows := fc()
		return e.Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed)
	}

	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gormlogger.ErrRecordNotFound):
		withSQL(g.logger.Error().Err(err)).Msg("Query failed")
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		withSQL(g.logger.Warn()).Dur("threshold", g.slowThreshold).Msg("Slow query")
	case g.level >= gormlogger.Info:
		withSQL(g.logger.Debug()).Msg("Query")
	}
}
