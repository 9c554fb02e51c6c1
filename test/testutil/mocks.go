// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"context"
	"sync"

	"github.com/noldarim/trackboard/internal/models"
)

// FakeSource is an in-memory project source that records how often it is
// read. With Block set, ListProjects waits for the context to end.
type FakeSource struct {
	Projects []models.Project
	Err      error
	Block    bool

	mu    sync.Mutex
	calls int
}

// ListProjects returns the configured projects or error
func (f *FakeSource) ListProjects(ctx context.Context) ([]models.Project, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Projects == nil {
		return nil, nil
	}
	out := make([]models.Project, len(f.Projects))
	copy(out, f.Projects)
	return out, nil
}

// Close is a no-op so FakeSource also satisfies store.Store.
func (f *FakeSource) Close() error { return nil }

// Calls returns the number of ListProjects invocations
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
