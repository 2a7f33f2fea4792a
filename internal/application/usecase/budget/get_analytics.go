package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// GetAnalyticsInput represents the input for the budget analytics query.
type GetAnalyticsInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetAnalyticsOutput bundles the budget, the derived category analysis list,
// the health metrics and the daily spending series for the budget window.
type GetAnalyticsOutput struct {
	Budget           *entity.Budget
	CategoryAnalysis []CategoryAnalysis
	HealthMetrics    HealthMetrics
	DailySpending    []entity.DailySpending
}

// GetAnalyticsUseCase derives analytics for a budget. It is read-only and
// does not trigger a sync: metrics reflect the spend state as persisted.
type GetAnalyticsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the wall clock. Intended for tests.
func (uc *GetAnalyticsUseCase) WithClock(now func() time.Time) *GetAnalyticsUseCase {
	uc.now = now
	return uc
}

// Execute computes the analytics bundle for the budget.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	b, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	dailySpending, err := uc.transactionRepo.GetDailySpending(ctx, input.UserID, b.StartDate, b.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily spending: %w", err)
	}

	return &GetAnalyticsOutput{
		Budget:           b,
		CategoryAnalysis: BuildCategoryAnalysis(b),
		HealthMetrics:    ComputeHealthMetrics(b, uc.now()),
		DailySpending:    dailySpending,
	}, nil
}
