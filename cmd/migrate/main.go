// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command migrate creates the projects table for the postgres and sqlite
// drivers and can seed it from a fixture. The dashboard itself never writes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/noldarim/trackboard/internal/logger"
	"github.com/noldarim/trackboard/internal/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.String("seed", "", "YAML or JSON fixture to insert after migrating")
	flag.Parse()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Log); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.CloseGlobal()

	if cfg.Datastore.Driver != config.DriverPostgres && cfg.Datastore.Driver != config.DriverSQLite {
		fmt.Printf("Driver %q has no schema to migrate; use postgres or sqlite\n", cfg.Datastore.Driver)
		os.Exit(1)
	}

	db, err := store.NewSQLStore(&cfg.Datastore)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("🚀 Starting database migration...")
	fmt.Printf("Database: %s\n", cfg.Datastore.Redacted())

	if err := db.AutoMigrate(); err != nil {
		fmt.Printf("❌ Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Database migration completed successfully!")

	if err := db.ValidateSchema(); err != nil {
		fmt.Printf("⚠️  Warning: Schema validation failed after migration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Schema validation passed - database is ready to use!")

	if *seed == "" {
		return
	}

	projects, err := store.ReadFixture(*seed)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	n, err := db.Seed(context.Background(), projects)
	if err != nil {
		fmt.Printf("❌ Seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🌱 Seeded %d of %d projects from %s\n", n, len(projects), *seed)
}
