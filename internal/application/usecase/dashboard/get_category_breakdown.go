package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID     uuid.UUID
	Type       entity.TransactionType // Optional, defaults to expense
	WindowDays int                    // Optional, 0 means all time
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Categories []entity.CategorySpending
}

// GetCategoryBreakdownUseCase aggregates per-category totals for one
// transaction type.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *GetCategoryBreakdownUseCase) WithClock(now func() time.Time) *GetCategoryBreakdownUseCase {
	uc.now = now
	return uc
}

// Execute returns per-category totals ordered by total descending.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	transactionType := input.Type
	if transactionType == "" {
		transactionType = entity.TransactionTypeExpense
	}

	var since *time.Time
	if input.WindowDays > 0 {
		s := uc.now().UTC().AddDate(0, 0, -input.WindowDays)
		since = &s
	}

	categories, err := uc.transactionRepo.GetCategorySpending(ctx, input.UserID, transactionType, since)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	return &GetCategoryBreakdownOutput{Categories: categories}, nil
}
