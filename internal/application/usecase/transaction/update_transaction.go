package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// UpdateTransactionInput represents a partial transaction update.
// Nil fields are unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Description   *string
	Date          *time.Time
	PaymentMethod *entity.PaymentMethod
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	observer        ActivityObserver
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, observer ActivityObserver) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		observer:        observer,
	}
}

// Execute applies the partial update. The merged result is re-validated as a
// whole, so changing the type without the category fails when the old category
// is invalid for the new type.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		tx.Type = *input.Type
	}
	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Category != nil {
		tx.Category = strings.ToLower(strings.TrimSpace(*input.Category))
	}
	if input.Description != nil {
		tx.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	if input.PaymentMethod != nil {
		tx.PaymentMethod = *input.PaymentMethod
	}

	if err := validateTransactionFields(tx.Type, tx.Amount, tx.Category, tx.PaymentMethod); err != nil {
		return nil, err
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if uc.observer != nil {
		uc.observer.TransactionMutated(input.UserID, tx)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	observer        ActivityObserver
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, observer ActivityObserver) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		observer:        observer,
	}
}

// Execute performs the transaction deletion and reports the mutation so
// dependent budgets can resync.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	tx, err := uc.transactionRepo.FindByIDAndUser(ctx, input.TransactionID, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if uc.observer != nil {
		uc.observer.TransactionMutated(input.UserID, tx)
	}

	return nil
}
