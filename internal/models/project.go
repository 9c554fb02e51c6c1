// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package models holds the records read by the dashboard.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is one tracked work item as stored in the "projects" collection.
// Timestamps are kept as the ISO 8601 strings the data store hands back.
type Project struct {
	ID        string   `gorm:"primaryKey;type:text" json:"id" yaml:"id"`
	Work      string   `gorm:"type:text" json:"work" yaml:"work"`
	Priority  Priority `gorm:"type:text" json:"priority" yaml:"priority"`
	Status    Status   `gorm:"type:text" json:"status" yaml:"status"`
	CreatedAt string   `gorm:"type:text;index" json:"created_at" yaml:"created_at"`
	UpdatedAt string   `gorm:"type:text" json:"updated_at" yaml:"updated_at"`
	CreatedBy *string  `gorm:"type:text" json:"created_by,omitempty" yaml:"created_by,omitempty"`
	UpdatedBy *string  `gorm:"type:text" json:"updated_by,omitempty" yaml:"updated_by,omitempty"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// BeforeCreate fills in the fields the remote store would normally assign.
// Only the seeding tool writes rows.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	if p.UpdatedAt == "" {
		p.UpdatedAt = p.CreatedAt
	}
	return nil
}

// Actor returns the value of an optional created_by/updated_by field.
func Actor(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
