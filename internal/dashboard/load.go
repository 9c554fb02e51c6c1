// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/noldarim/trackboard/internal/logger"
	"github.com/noldarim/trackboard/internal/models"

	"github.com/rs/zerolog"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetDashboardLogger()
		log = &l
	})
	return log
}

// Source reads every project ordered by created_at descending.
type Source interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
}

// LoadResult is the outcome of the single mount read.
type LoadResult struct {
	Projects []models.Project
	Err      error
	Duration time.Duration
}

// Load performs the mount read. A failure is logged and returned in the
// result; callers settle the state with it and show the empty list.
func Load(ctx context.Context, src Source) LoadResult {
	start := time.Now()
	projects, err := src.ListProjects(ctx)
	elapsed := time.Since(start)

	if err != nil {
		getLog().Error().Err(err).Dur("duration", elapsed).Msg("Error fetching projects")
		return LoadResult{Projects: []models.Project{}, Err: err, Duration: elapsed}
	}
	if projects == nil {
		projects = []models.Project{}
	}

	getLog().Debug().Int("count", len(projects)).Dur("duration", elapsed).Msg("Projects loaded")
	return LoadResult{Projects: projects, Duration: elapsed}
}

// LoadWithTimeout bounds Load by d. A zero or negative d means no bound.
func LoadWithTimeout(ctx context.Context, src Source, d time.Duration) LoadResult {
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	return Load(ctx, src)
}
