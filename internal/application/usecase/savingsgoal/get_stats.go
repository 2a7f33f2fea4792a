package savingsgoal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// GetStatsInput represents the input for goal statistics retrieval.
type GetStatsInput struct {
	UserID uuid.UUID
}

// GetStatsOutput represents the output of goal statistics retrieval.
type GetStatsOutput struct {
	Stats *entity.SavingsGoalStats
}

// GetStatsUseCase handles aggregate goal statistics retrieval.
type GetStatsUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(goalRepo adapter.SavingsGoalRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves aggregate statistics across the user's goals.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	stats, err := uc.goalRepo.GetStats(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute goal statistics: %w", err)
	}

	return &GetStatsOutput{Stats: stats}, nil
}
