// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/noldarim/trackboard/internal/config"
	"github.com/noldarim/trackboard/internal/models"

	postgrest "github.com/supabase-community/postgrest-go"
	supabase "github.com/supabase-community/supabase-go"
)

// tableQuerier is satisfied by both *supabase.Client and *postgrest.Client.
type tableQuerier interface {
	From(table string) *postgrest.QueryBuilder
}

// RESTStore reads projects over PostgREST, either through a Supabase
// project or a bare PostgREST endpoint.
type RESTStore struct {
	client tableQuerier
	table  string
}

// NewSupabaseStore connects to a Supabase project. The REST endpoint is
// cfg.URL + "/rest/v1".
func NewSupabaseStore(cfg *config.DatastoreConfig) (*RESTStore, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.Key == "" {
		return nil, ErrMissingKey
	}

	client, err := supabase.NewClient(cfg.URL, cfg.Key, &supabase.ClientOptions{Schema: cfg.Schema})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &RESTStore{client: client, table: cfg.Table}, nil
}

// NewPostgRESTStore talks to a PostgREST base URL directly. The key, when
// set, is sent both as apikey and as a bearer token.
func NewPostgRESTStore(cfg *config.DatastoreConfig) (*RESTStore, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}

	headers := map[string]string{}
	if cfg.Key != "" {
		headers["apikey"] = cfg.Key
		headers["Authorization"] = "Bearer " + cfg.Key
	}

	client := postgrest.NewClient(cfg.URL, cfg.Schema, headers)
	if client.ClientError != nil {
		return nil, fmt.Errorf("invalid postgrest url: %w", client.ClientError)
	}
	return &RESTStore{client: client, table: cfg.Table}, nil
}

// ListProjects issues select=*&order=created_at.desc.
// The postgrest client takes no context, so the request runs in its own
// goroutine and ListProjects stops waiting once ctx is done.
func (s *RESTStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	type result struct {
		projects []models.Project
		err      error
	}
	done := make(chan result, 1)

	go func() {
		var projects []models.Project
		_, err := s.client.From(s.table).
			Select("*", "", false).
			Order("created_at", &postgrest.OrderOpts{Ascending: false}).
			ExecuteTo(&projects)
		done <- result{projects: projects, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", s.table, r.err)
		}
		return r.projects, nil
	}
}

// Close is a no-op; the REST clients hold no connections of their own.
func (s *RESTStore) Close() error { return nil }
