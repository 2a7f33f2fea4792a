// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByIDAndUser retrieves a budget by id, scoped to its owner. A budget
	// owned by another user is reported as not found.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindActiveAt retrieves the user's active budgets whose window covers
	// the given time.
	FindActiveAt(ctx context.Context, userID uuid.UUID, at time.Time) ([]*entity.Budget, error)

	// Update persists the full budget state in a single write.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database (soft delete).
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
