// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// TipRepository defines the interface for tip persistence operations.
type TipRepository interface {
	// Create creates a new tip in the database.
	Create(ctx context.Context, tip *entity.Tip) error

	// List retrieves tips, newest first. When onlyActive is set, inactive
	// tips are excluded.
	List(ctx context.Context, onlyActive bool) ([]*entity.Tip, error)

	// FindByID retrieves a tip by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error)

	// Update updates an existing tip in the database.
	Update(ctx context.Context, tip *entity.Tip) error

	// Delete removes a tip.
	Delete(ctx context.Context, id uuid.UUID) error
}
