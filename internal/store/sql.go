// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/noldarim/trackboard/internal/logger"
	"github.com/noldarim/trackboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slowQuery is the threshold above which GORM statements are logged at warn.
const slowQuery = 500 * time.Millisecond

// SQLStore reads projects straight from Postgres (Supabase included) or a
// local SQLite file through GORM.
type SQLStore struct {
	db    *gorm.DB
	table string
}

// NewSQLStore opens a GORM connection for the postgres or sqlite driver.
func NewSQLStore(cfg *config.DatastoreConfig) (*SQLStore, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.GetDSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogAdapter(logger.GetStoreLogger(), slowQuery),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLStore{db: db, table: cfg.Table}, nil
}

func (s *SQLStore) query(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.table)
}

// ListProjects selects every row ordered by created_at descending.
func (s *SQLStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.query(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	return projects, nil
}

// AutoMigrate creates or updates the projects table.
func (s *SQLStore) AutoMigrate() error {
	return s.db.Table(s.table).AutoMigrate(&models.Project{})
}

// ValidateSchema checks that the table and the columns the dashboard reads
// exist.
func (s *SQLStore) ValidateSchema() error {
	m := s.db.Table(s.table).Migrator()
	if !m.HasTable(s.table) {
		return fmt.Errorf("missing table: %s\n\nRun the migrate tool to create it", s.table)
	}

	var missing []string
	for _, col := range []string{"id", "work", "priority", "status", "created_at", "updated_at", "created_by", "updated_by"} {
		if !m.HasColumn(&models.Project{}, col) {
			missing = append(missing, s.table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %v", missing)
	}
	return nil
}

// Seed inserts projects, skipping ids that already exist. It returns the
// number of rows inserted. Only the migrate tool calls it.
func (s *SQLStore) Seed(ctx context.Context, projects []models.Project) (int64, error) {
	if len(projects) == 0 {
		return 0, nil
	}
	res := s.query(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		CreateInBatches(projects, 100)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to seed %s: %w", s.table, res.Error)
	}
	return res.RowsAffected, nil
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
