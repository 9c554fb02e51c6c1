// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/noldarim/trackboard/internal/models"

	"gopkg.in/yaml.v3"
)

// FileStore serves projects from a YAML or JSON fixture. The file is read
// on every ListProjects call so edits show up on the next mount.
type FileStore struct {
	path string
}

// NewFileStore checks that path exists and returns a store over it.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrMissingPath
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	return &FileStore{path: path}, nil
}

// ListProjects decodes the fixture and sorts it newest first.
func (s *FileStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projects, err := ReadFixture(s.path)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(projects, models.NewestFirst)
	return projects, nil
}

func (s *FileStore) Close() error { return nil }

// fixture accepts either a bare list or {projects: [...]}.
type fixture struct {
	Projects []models.Project `json:"projects" yaml:"projects"`
}

// ReadFixture decodes a project fixture. Files ending in .json are decoded
// as JSON, anything else as YAML.
func ReadFixture(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var projects []models.Project
	if strings.EqualFold(filepath.Ext(path), ".json") {
		projects, err = decodeFixture(data, json.Unmarshal)
	} else {
		projects, err = decodeFixture(data, yaml.Unmarshal)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}
	return projects, nil
}

func decodeFixture(data []byte, unmarshal func([]byte, any) error) ([]models.Project, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return []models.Project{}, nil
	}

	var list []models.Project
	if err := unmarshal(data, &list); err == nil {
		return list, nil
	}

	var wrapped fixture
	if err := unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Projects, nil
}
