// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for notification persistence operations.
type NotificationRepository interface {
	// Create creates a new notification in the database.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves notifications for a user, newest first. When
	// unreadOnly is set, read notifications are excluded.
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead marks all of a user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ExistsGoalMilestone reports whether an achievement notification already
	// exists for the given goal and milestone. Used to dedupe milestone alerts.
	ExistsGoalMilestone(ctx context.Context, userID, goalID uuid.UUID, milestone int) (bool, error)

	// ExistsRecentDeadlineReminder reports whether a deadline reminder for the
	// goal was created at or after the given time.
	ExistsRecentDeadlineReminder(ctx context.Context, userID, goalID uuid.UUID, since time.Time) (bool, error)
}
