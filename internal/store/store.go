// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store reads the projects collection from the configured data
// store. Every driver returns all rows ordered by created_at descending and
// none of them write.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/noldarim/trackboard/internal/config"
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
		l := logger.GetStoreLogger()
		log = &l
	})
	return log
}

var (
	// ErrUnsupportedDriver is returned for a driver name New does not know.
	ErrUnsupportedDriver = errors.New("unsupported datastore driver")
	// ErrMissingURL is returned when a REST driver has no base URL.
	ErrMissingURL = errors.New("datastore url is required")
	// ErrMissingKey is returned when the supabase driver has no API key.
	ErrMissingKey = errors.New("datastore key is required")
	// ErrMissingPath is returned when the file driver has no fixture path.
	ErrMissingPath = errors.New("datastore path is required")
)

// Store is a read-only source of projects.
type Store interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	Close() error
}

// New opens the store selected by cfg.Driver.
func New(cfg *config.DatastoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Driver {
	case config.DriverSupabase:
		s, err = NewSupabaseStore(cfg)
	case config.DriverPostgREST:
		s, err = NewPostgRESTStore(cfg)
	case config.DriverPostgres, config.DriverSQLite:
		s, err = NewSQLStore(cfg)
	case config.DriverFile:
		s, err = NewFileStore(cfg.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	getLog().Info().Str("driver", cfg.Driver).Str("target", cfg.Redacted()).Msg("Datastore opened")
	return s, nil
}
