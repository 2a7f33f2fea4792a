// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tip is a short piece of financial advice curated by administrators and
// surfaced to users on the dashboard.
type Tip struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Category  string
	Tags      []string
	IsActive  bool
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTip creates a new active Tip entity.
func NewTip(createdBy uuid.UUID, title, content, category string, tags []string) *Tip {
	now := time.Now().UTC()

	return &Tip{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Category:  category,
		Tags:      tags,
		IsActive:  true,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
