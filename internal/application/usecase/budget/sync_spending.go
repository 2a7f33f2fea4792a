package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// SyncSpendingInput represents the input for a spend synchronization.
type SyncSpendingInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// SyncSpendingOutput represents the output of a spend synchronization.
type SyncSpendingOutput struct {
	Budget *entity.Budget
}

// SyncSpendingUseCase recomputes every category's spent amount and the
// budget's total spent amount from the transaction store.
type SyncSpendingUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	alerter         ThresholdAlerter
}

// NewSyncSpendingUseCase creates a new SyncSpendingUseCase instance.
// The alerter may be nil, in which case crossings are not reported.
func NewSyncSpendingUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	alerter ThresholdAlerter,
) *SyncSpendingUseCase {
	return &SyncSpendingUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		alerter:         alerter,
	}
}

// Execute performs the spend synchronization. The recompute is a full
// read-recompute-write cycle: spent amounts are derived solely from the
// transaction store's current state, never accumulated by hand, so re-running
// the sync is idempotent and self-correcting after a lost update.
func (uc *SyncSpendingUseCase) Execute(ctx context.Context, input SyncSpendingInput) (*SyncSpendingOutput, error) {
	b, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	before := CaptureUsage(b)

	transactions, err := uc.transactionRepo.FindExpensesInRange(ctx, input.UserID, b.StartDate, b.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for sync: %w", err)
	}

	ApportionSpending(b, transactions)

	// Single full-state write: either the whole new spend state lands or
	// none of it does.
	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to persist synced budget: %w", err)
	}

	if uc.alerter != nil && b.Notifications.Enabled && b.Notifications.ThresholdAlert {
		if crossings := DetectCrossings(before, b); len(crossings) > 0 {
			uc.alerter.BudgetThresholdCrossed(input.UserID, b, crossings)
		}
	}

	return &SyncSpendingOutput{Budget: b}, nil
}

// ApportionSpending resets every category's spent amount and re-apportions
// the given expense transactions: each transaction goes to the category whose
// name matches case-insensitively, else to a category literally named
// "Other" if present, else it is dropped from this budget's accounting.
// Totals are recomputed afterwards.
func ApportionSpending(b *entity.Budget, transactions []*entity.Transaction) {
	for i := range b.Categories {
		b.Categories[i].SpentAmount = decimal.Zero
	}

	for _, tx := range transactions {
		target := b.FindCategory(tx.Category)
		if target == nil {
			target = b.FallbackCategory()
		}
		if target == nil {
			continue // no matching category, no "Other": not an error
		}
		target.SpentAmount = target.SpentAmount.Add(tx.Amount)
	}

	b.RecalculateTotalSpent()
}
