// Package error defines domain-specific errors for the Smart Finance application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when registering an email that is already in use.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when email/password do not match a user.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDeactivated is returned when a deactivated user attempts to log in.
	ErrAccountDeactivated = errors.New("account is deactivated")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrWeakPassword is returned when a password does not meet the minimum length.
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrForbidden is returned when a user lacks the role required for an operation.
	ErrForbidden = errors.New("insufficient permissions")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound           AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUT-010002"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUT-010003"
	ErrCodeAccountDeactivated     AuthErrorCode = "AUT-010004"
	ErrCodeWeakPassword           AuthErrorCode = "AUT-010005"
	ErrCodeMissingAuthFields      AuthErrorCode = "AUT-010006"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-020002"

	// Access errors (03XXXX)
	ErrCodeForbidden   AuthErrorCode = "AUT-030001"
	ErrCodeRateLimited AuthErrorCode = "AUT-030002"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
