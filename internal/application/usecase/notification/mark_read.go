package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
)

// MarkReadInput represents the input for marking a notification as read.
type MarkReadInput struct {
	UserID         uuid.UUID
	NotificationID uuid.UUID
}

// MarkReadUseCase handles marking a single notification as read.
type MarkReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkReadUseCase creates a new MarkReadUseCase instance.
func NewMarkReadUseCase(notificationRepo adapter.NotificationRepository) *MarkReadUseCase {
	return &MarkReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks the notification as read, scoped to its owner.
func (uc *MarkReadUseCase) Execute(ctx context.Context, input MarkReadInput) error {
	return uc.notificationRepo.MarkRead(ctx, input.NotificationID, input.UserID)
}

// MarkAllReadInput represents the input for marking all notifications as read.
type MarkAllReadInput struct {
	UserID uuid.UUID
}

// MarkAllReadUseCase handles marking all of a user's notifications as read.
type MarkAllReadUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewMarkAllReadUseCase creates a new MarkAllReadUseCase instance.
func NewMarkAllReadUseCase(notificationRepo adapter.NotificationRepository) *MarkAllReadUseCase {
	return &MarkAllReadUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute marks every notification of the user as read.
func (uc *MarkAllReadUseCase) Execute(ctx context.Context, input MarkAllReadInput) error {
	return uc.notificationRepo.MarkAllRead(ctx, input.UserID)
}

// DeleteNotificationInput represents the input for notification deletion.
type DeleteNotificationInput struct {
	UserID         uuid.UUID
	NotificationID uuid.UUID
}

// DeleteNotificationUseCase handles notification deletion logic.
type DeleteNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewDeleteNotificationUseCase creates a new DeleteNotificationUseCase instance.
func NewDeleteNotificationUseCase(notificationRepo adapter.NotificationRepository) *DeleteNotificationUseCase {
	return &DeleteNotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// Execute removes the notification, scoped to its owner.
func (uc *DeleteNotificationUseCase) Execute(ctx context.Context, input DeleteNotificationInput) error {
	return uc.notificationRepo.Delete(ctx, input.NotificationID, input.UserID)
}
