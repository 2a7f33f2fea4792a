// Package dashboard contains read-model use cases aggregating transactions
// into overview figures.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// DefaultStatsWindowDays is the trailing window used when none is given.
const DefaultStatsWindowDays = 30

const recentTransactionCount = 5

// GetStatsInput represents the input for dashboard statistics retrieval.
type GetStatsInput struct {
	UserID     uuid.UUID
	WindowDays int // Optional, defaults to DefaultStatsWindowDays
}

// GetStatsOutput represents the output of dashboard statistics retrieval.
type GetStatsOutput struct {
	Totals             *entity.TransactionTotals
	RecentTransactions []*entity.Transaction
	WindowDays         int
}

// GetStatsUseCase aggregates trailing-window totals and recent activity.
type GetStatsUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(transactionRepo adapter.TransactionRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *GetStatsUseCase) WithClock(now func() time.Time) *GetStatsUseCase {
	uc.now = now
	return uc
}

// Execute computes income/expense/net totals over the trailing window plus
// the most recent transactions.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	windowDays := input.WindowDays
	if windowDays < 1 {
		windowDays = DefaultStatsWindowDays
	}

	since := uc.now().UTC().AddDate(0, 0, -windowDays)

	totals, err := uc.transactionRepo.GetTotals(ctx, input.UserID, &since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	recent, err := uc.transactionRepo.FindRecent(ctx, input.UserID, recentTransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}

	return &GetStatsOutput{
		Totals:             totals,
		RecentTransactions: recent,
		WindowDays:         windowDays,
	}, nil
}
