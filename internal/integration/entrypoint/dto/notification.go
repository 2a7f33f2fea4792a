package dto

import (
	"time"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Priority  string                 `json:"priority"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	ActionURL string                 `json:"action_url,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// NotificationListResponse represents the response body for notification listing.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// NotificationResponseFromEntity converts a notification entity to its API representation.
func NotificationResponseFromEntity(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		Data:      n.Data,
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
	}
}
