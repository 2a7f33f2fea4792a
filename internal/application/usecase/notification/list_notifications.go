// Package notification contains in-app notification use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// DefaultListLimit bounds how many notifications a single listing returns.
const DefaultListLimit = 50

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	UserID     uuid.UUID
	UnreadOnly bool
	Limit      int // Optional, defaults to DefaultListLimit
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
}

// ListNotificationsUseCase handles notification listing logic.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute retrieves the user's notifications, newest first, plus the unread count.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	limit := input.Limit
	if limit < 1 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	notifications, err := uc.notificationRepo.FindByUser(ctx, input.UserID, input.UnreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notificationRepo.CountUnread(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &ListNotificationsOutput{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
