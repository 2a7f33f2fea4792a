package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// BudgetCategoriesJSON stores the category list as a JSON column.
type BudgetCategoriesJSON []entity.BudgetCategory

// Value implements the driver.Valuer interface.
func (c BudgetCategoriesJSON) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface.
func (c *BudgetCategoriesJSON) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	bytes, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, c)
}

// NotificationSettingsJSON stores the notification settings as a JSON column.
type NotificationSettingsJSON entity.BudgetNotificationSettings

// Value implements the driver.Valuer interface.
func (s NotificationSettingsJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface.
func (s *NotificationSettingsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, s)
}

// toBytes normalizes the driver value of a JSON column. The postgres driver
// hands back []byte, sqlite hands back string.
func toBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("unsupported type for JSON column")
	}
}

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID             uuid.UUID                `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID                `gorm:"type:uuid;not null;index"`
	Name           string                   `gorm:"type:varchar(255);not null"`
	Period         string                   `gorm:"type:varchar(20);not null"`
	StartDate      time.Time                `gorm:"not null;index"`
	EndDate        time.Time                `gorm:"not null;index"`
	Categories     BudgetCategoriesJSON     `gorm:"type:jsonb;not null;default:'[]'"`
	TotalBudget    decimal.Decimal          `gorm:"type:decimal(15,2);not null"`
	TotalSpent     decimal.Decimal          `gorm:"type:decimal(15,2);not null"`
	AlertThreshold int                      `gorm:"not null;default:80"`
	IsActive       bool                     `gorm:"not null;default:true;index"`
	Notifications  NotificationSettingsJSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt      time.Time                `gorm:"not null"`
	UpdatedAt      time.Time                `gorm:"not null"`
	DeletedAt      gorm.DeletedAt           `gorm:"index"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Budget{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Period:         entity.BudgetPeriod(m.Period),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Categories:     []entity.BudgetCategory(m.Categories),
		TotalBudget:    m.TotalBudget,
		TotalSpent:     m.TotalSpent,
		AlertThreshold: m.AlertThreshold,
		IsActive:       m.IsActive,
		Notifications:  entity.BudgetNotificationSettings(m.Notifications),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:             b.ID,
		UserID:         b.UserID,
		Name:           b.Name,
		Period:         string(b.Period),
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		Categories:     BudgetCategoriesJSON(b.Categories),
		TotalBudget:    b.TotalBudget,
		TotalSpent:     b.TotalSpent,
		AlertThreshold: b.AlertThreshold,
		IsActive:       b.IsActive,
		Notifications:  NotificationSettingsJSON(b.Notifications),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
