package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// TipModel represents the tips table in the database.
type TipModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:varchar(2000);not null"`
	Category  string         `gorm:"type:varchar(50)"`
	Tags      pq.StringArray `gorm:"type:text[]"`
	IsActive  bool           `gorm:"not null;default:true;index"`
	CreatedBy uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the TipModel.
func (TipModel) TableName() string {
	return "tips"
}

// ToEntity converts a TipModel to a domain Tip entity.
func (m *TipModel) ToEntity() *entity.Tip {
	return &entity.Tip{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Category:  m.Category,
		Tags:      []string(m.Tags),
		IsActive:  m.IsActive,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TipFromEntity creates a TipModel from a domain Tip entity.
func TipFromEntity(tip *entity.Tip) *TipModel {
	return &TipModel{
		ID:        tip.ID,
		Title:     tip.Title,
		Content:   tip.Content,
		Category:  tip.Category,
		Tags:      pq.StringArray(tip.Tags),
		IsActive:  tip.IsActive,
		CreatedBy: tip.CreatedBy,
		CreatedAt: tip.CreatedAt,
		UpdatedAt: tip.UpdatedAt,
	}
}
