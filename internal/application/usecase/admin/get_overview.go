package admin

import (
	"context"
	"fmt"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// GetOverviewOutput represents the platform-wide overview figures.
type GetOverviewOutput struct {
	TotalUsers        int64
	TotalTransactions int64
	Volume            *entity.TransactionTotals
}

// GetOverviewUseCase aggregates platform-wide counts and volume totals.
type GetOverviewUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(userRepo adapter.UserRepository, transactionRepo adapter.TransactionRepository) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute returns user and transaction counts plus all-time volume totals.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	users, err := uc.userRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	transactions, err := uc.transactionRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	volume, err := uc.transactionRepo.GetPlatformTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute volume totals: %w", err)
	}

	return &GetOverviewOutput{
		TotalUsers:        users,
		TotalTransactions: transactions,
		Volume:            volume,
	}, nil
}
