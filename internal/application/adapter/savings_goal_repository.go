// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// SavingsGoalRepository defines the interface for savings goal persistence operations.
type SavingsGoalRepository interface {
	// Create creates a new savings goal in the database.
	Create(ctx context.Context, goal *entity.SavingsGoal) error

	// FindByIDAndUser retrieves a goal by id, scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error)

	// FindByUser retrieves all goals for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.SavingsGoal) error

	// Delete removes a goal from the database (soft delete).
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// GetStats returns aggregate statistics across the user's goals.
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.SavingsGoalStats, error)
}
