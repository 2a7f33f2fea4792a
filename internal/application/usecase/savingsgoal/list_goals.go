package savingsgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing savings goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing savings goals.
type ListGoalsOutput struct {
	Goals []*entity.SavingsGoal
}

// ListGoalsUseCase handles savings goal listing logic.
type ListGoalsUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.SavingsGoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves all savings goals for the user, newest first.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	return &ListGoalsOutput{Goals: goals}, nil
}
