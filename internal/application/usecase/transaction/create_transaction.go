package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          time.Time
	PaymentMethod entity.PaymentMethod
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	observer        ActivityObserver
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
// The observer may be nil, in which case lifecycle events are not reported.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, observer ActivityObserver) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		observer:        observer,
	}
}

// Execute performs the transaction creation. Categories are stored lowercase.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Amount, input.Category, input.PaymentMethod); err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	method := input.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodOther
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.Type,
		input.Amount,
		strings.ToLower(strings.TrimSpace(input.Category)),
		strings.TrimSpace(input.Description),
		date,
		method,
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if uc.observer != nil {
		uc.observer.TransactionRecorded(input.UserID, tx)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}

// validateTransactionFields checks type, amount, category and payment method.
// An empty payment method is allowed and defaults to "other".
func validateTransactionFields(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	category string,
	method entity.PaymentMethod,
) error {
	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.IsValidTransactionCategory(transactionType, strings.TrimSpace(category)) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			fmt.Sprintf("category %q is not valid for %s transactions", category, transactionType),
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	if method != "" && !entity.IsValidPaymentMethod(method) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			fmt.Sprintf("payment method %q is not recognized", method),
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	return nil
}
