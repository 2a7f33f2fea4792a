package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// NotificationModel represents the notifications table in the database.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:varchar(1000);not null"`
	Type      string    `gorm:"type:varchar(20);not null;index"`
	Priority  string    `gorm:"type:varchar(10);not null"`
	Data      string    `gorm:"type:jsonb;not null;default:'{}'"`
	IsRead    bool      `gorm:"not null;default:false;index"`
	ActionURL string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the NotificationModel.
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToEntity converts a NotificationModel to a domain Notification entity.
func (m *NotificationModel) ToEntity() *entity.Notification {
	var data map[string]interface{}
	if m.Data != "" {
		if err := json.Unmarshal([]byte(m.Data), &data); err != nil {
			slog.Warn("failed to unmarshal notification data", "error", err, "id", m.ID)
		}
	}

	return &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      entity.NotificationType(m.Type),
		Priority:  entity.NotificationPriority(m.Priority),
		Data:      data,
		IsRead:    m.IsRead,
		ActionURL: m.ActionURL,
		CreatedAt: m.CreatedAt,
	}
}

// NotificationFromEntity creates a NotificationModel from a domain Notification entity.
func NotificationFromEntity(n *entity.Notification) *NotificationModel {
	dataJSON, err := json.Marshal(n.Data)
	if err != nil {
		slog.Error("failed to marshal notification data", "error", err, "id", n.ID)
		dataJSON = []byte("{}")
	}

	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		Data:      string(dataJSON),
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
	}
}
