// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	NotificationBudgetAlert NotificationType = "budget-alert"
	NotificationAchievement NotificationType = "achievement"
	NotificationReminder    NotificationType = "reminder"
	NotificationTransaction NotificationType = "transaction"
	NotificationSystem      NotificationType = "system"
)

// NotificationPriority indicates how urgently a notification should surface.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification is an in-app message produced by the alert monitors.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	Priority  NotificationPriority
	Data      map[string]interface{}
	IsRead    bool
	ActionURL string
	CreatedAt time.Time
}

// NewNotification creates a new unread Notification entity.
func NewNotification(
	userID uuid.UUID,
	title, message string,
	notificationType NotificationType,
	priority NotificationPriority,
	data map[string]interface{},
	actionURL string,
) *Notification {
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Priority:  priority,
		Data:      data,
		ActionURL: actionURL,
		CreatedAt: time.Now().UTC(),
	}
}
