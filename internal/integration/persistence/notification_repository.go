package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/persistence/model"
)

// notificationRepository implements the adapter.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB) adapter.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create creates a new notification in the database.
func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationModel := model.NotificationFromEntity(notification)
	result := r.db.WithContext(ctx).Create(notificationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves notifications for a user, newest first.
func (r *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notificationModels []model.NotificationModel
	result := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i, nm := range notificationModels {
		notifications[i] = nm.ToEntity()
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications for a user.
func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// MarkRead marks a single notification as read.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks all of a user's notifications as read.
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a notification. Notifications are hard-deleted.
func (r *notificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNotificationNotFound
	}
	return nil
}

// ExistsGoalMilestone reports whether an achievement notification already
// exists for the given goal and milestone. The JSON payload is inspected in
// memory so the check runs on postgres and sqlite alike.
func (r *notificationRepository) ExistsGoalMilestone(ctx context.Context, userID, goalID uuid.UUID, milestone int) (bool, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(entity.NotificationAchievement)).
		Find(&notificationModels)
	if result.Error != nil {
		return false, result.Error
	}

	for _, nm := range notificationModels {
		gID, m, ok := decodeMilestoneData(nm.Data)
		if ok && gID == goalID.String() && m == milestone {
			return true, nil
		}
	}
	return false, nil
}

// ExistsRecentDeadlineReminder reports whether a deadline reminder for the
// goal was created at or after the given time.
func (r *notificationRepository) ExistsRecentDeadlineReminder(ctx context.Context, userID, goalID uuid.UUID, since time.Time) (bool, error) {
	var notificationModels []model.NotificationModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND created_at >= ?",
			userID, string(entity.NotificationReminder), since).
		Find(&notificationModels)
	if result.Error != nil {
		return false, result.Error
	}

	for _, nm := range notificationModels {
		var data struct {
			GoalID string `json:"goal_id"`
		}
		if err := json.Unmarshal([]byte(nm.Data), &data); err != nil {
			continue
		}
		if data.GoalID == goalID.String() {
			return true, nil
		}
	}
	return false, nil
}

func decodeMilestoneData(raw string) (goalID string, milestone int, ok bool) {
	var data struct {
		GoalID    string   `json:"goal_id"`
		Milestone *float64 `json:"milestone"`
	}
	if err := json.Unmarshal([]byte(raw), &data); err != nil || data.Milestone == nil {
		return "", 0, false
	}
	return data.GoalID, int(*data.Milestone), true
}
