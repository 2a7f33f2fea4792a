// Package error defines domain-specific errors for the Smart Finance application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is absent or not owned by the
	// caller. Ownership failures use this error too, to avoid existence leakage.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetWindow is returned when the end date is before the start date.
	ErrInvalidBudgetWindow = errors.New("end date must not be before start date")

	// ErrInvalidBudgetCategory is returned when a category name is outside the fixed set.
	ErrInvalidBudgetCategory = errors.New("invalid budget category name")

	// ErrNegativeBudgetAmount is returned when a category allocation is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")

	// ErrInvalidAlertThreshold is returned when the alert threshold is outside 1-100.
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 1 and 100")

	// ErrInvalidBudgetPeriod is returned when the period label is invalid.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrMissingBudgetName is returned when the budget name is empty.
	ErrMissingBudgetName = errors.New("budget name is required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetWindow   BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BGT-010003"
	ErrCodeNegativeBudgetAmount  BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidAlertThreshold BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BGT-010006"
	ErrCodeMissingBudgetName     BudgetErrorCode = "BGT-010007"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010008"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
