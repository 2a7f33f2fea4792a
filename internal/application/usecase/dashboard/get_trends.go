package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// DefaultTrendMonths is the trailing month count used when none is given.
const DefaultTrendMonths = 6

// GetTrendsInput represents the input for monthly trend retrieval.
type GetTrendsInput struct {
	UserID uuid.UUID
	Months int // Optional, defaults to DefaultTrendMonths
}

// GetTrendsOutput represents the output of monthly trend retrieval.
type GetTrendsOutput struct {
	Trends []entity.MonthlyTrend
	Months int
}

// GetTrendsUseCase aggregates income and expenses by calendar month.
type GetTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(transactionRepo adapter.TransactionRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *GetTrendsUseCase) WithClock(now func() time.Time) *GetTrendsUseCase {
	uc.now = now
	return uc
}

// Execute returns per-month income/expense totals over the trailing months,
// ordered chronologically.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	months := input.Months
	if months < 1 {
		months = DefaultTrendMonths
	}

	since := uc.now().UTC().AddDate(0, -months, 0)

	trends, err := uc.transactionRepo.GetMonthlyTrends(ctx, input.UserID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly trends: %w", err)
	}

	return &GetTrendsOutput{Trends: trends, Months: months}, nil
}
