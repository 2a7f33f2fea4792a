// Package error defines domain-specific errors for the Smart Finance application.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is absent or not owned by the caller.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is not greater than zero.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidContribution is returned when a contribution amount is not greater than zero.
	ErrInvalidContribution = errors.New("contribution amount must be greater than zero")

	// ErrInvalidGoalCategory is returned when the goal category is outside the fixed set.
	ErrInvalidGoalCategory = errors.New("invalid goal category")

	// ErrInvalidGoalPriority is returned when the priority is outside the fixed set.
	ErrInvalidGoalPriority = errors.New("invalid goal priority")

	// ErrInvalidReminderFrequency is returned when the reminder frequency is invalid.
	ErrInvalidReminderFrequency = errors.New("invalid reminder frequency")

	// ErrMissingGoalTitle is returned when the goal title is empty.
	ErrMissingGoalTitle = errors.New("goal title is required")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound             GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount      GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContribution      GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalCategory      GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalPriority      GoalErrorCode = "GOL-010005"
	ErrCodeInvalidReminderFrequency GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields        GoalErrorCode = "GOL-010007"
)

// GoalError represents a savings goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
