package savingsgoal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// GetGoalInput represents the input for fetching a single savings goal.
type GetGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// GetGoalOutput carries the goal together with its derived progress figures.
type GetGoalOutput struct {
	Goal               *entity.SavingsGoal
	ProgressPercentage float64
	RemainingAmount    decimal.Decimal
	DaysRemaining      int
	RequiredMonthly    decimal.Decimal
}

// GetGoalUseCase handles single goal retrieval with derived progress.
type GetGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
	now      func() time.Time
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.SavingsGoalRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *GetGoalUseCase) WithClock(now func() time.Time) *GetGoalUseCase {
	uc.now = now
	return uc
}

// Execute fetches the goal and derives its progress numbers. RequiredMonthly
// is the contribution pace needed to hit the target by the target date,
// spreading the remaining amount over the remaining whole months (at least one).
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	g, err := uc.goalRepo.FindByIDAndUser(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	remaining := g.RemainingAmount()
	daysRemaining := g.DaysRemaining(now)

	monthsRemaining := daysRemaining / 30
	if monthsRemaining < 1 {
		monthsRemaining = 1
	}

	return &GetGoalOutput{
		Goal:               g,
		ProgressPercentage: g.ProgressPercentage(),
		RemainingAmount:    remaining,
		DaysRemaining:      daysRemaining,
		RequiredMonthly:    remaining.Div(decimal.NewFromInt(int64(monthsRemaining))),
	}, nil
}
