package savingsgoal

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for savings goal deletion.
type DeleteGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteGoalUseCase handles savings goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.SavingsGoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	return uc.goalRepo.Delete(ctx, input.GoalID, input.UserID)
}
