// Package error defines domain-specific errors for the Smart Finance application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is absent or not owned by the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is neither income nor expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is not greater than zero.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionCategory is returned when the category is outside the fixed set for the type.
	ErrInvalidTransactionCategory = errors.New("invalid category for transaction type")

	// ErrInvalidPaymentMethod is returned when the payment method is outside the fixed set.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound        TransactionErrorCode = "TRX-010001"
	ErrCodeInvalidTransactionType     TransactionErrorCode = "TRX-010002"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TRX-010003"
	ErrCodeInvalidTransactionCategory TransactionErrorCode = "TRX-010004"
	ErrCodeInvalidPaymentMethod       TransactionErrorCode = "TRX-010005"
	ErrCodeMissingTransactionFields   TransactionErrorCode = "TRX-010006"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
