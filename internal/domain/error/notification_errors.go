// Package error defines domain-specific errors for the Smart Finance application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNotificationNotFound is returned when a notification is absent or not owned by the caller.
	ErrNotificationNotFound = errors.New("notification not found")
)

// Tip domain errors.
var (
	// ErrTipNotFound is returned when a tip is not found in the system.
	ErrTipNotFound = errors.New("tip not found")

	// ErrMissingTipFields is returned when a tip is missing its title or content.
	ErrMissingTipFields = errors.New("tip title and content are required")
)
