package model

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// ContributionsJSON stores the contribution history as a JSON column.
type ContributionsJSON []entity.Contribution

// Value implements the driver.Valuer interface.
func (c ContributionsJSON) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements the sql.Scanner interface.
func (c *ContributionsJSON) Scan(value interface{}) error {
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

// SavingsGoalModel represents the savings_goals table in the database.
type SavingsGoalModel struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID         `gorm:"type:uuid;not null;index"`
	Title               string            `gorm:"type:varchar(255);not null"`
	Description         string            `gorm:"type:varchar(1000)"`
	TargetAmount        decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	CurrentAmount       decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	TargetDate          time.Time         `gorm:"not null"`
	Category            string            `gorm:"type:varchar(30);not null"`
	Priority            string            `gorm:"type:varchar(10);not null"`
	IsCompleted         bool              `gorm:"not null;default:false;index"`
	MonthlyContribution decimal.Decimal   `gorm:"type:decimal(15,2);not null"`
	AutoContribute      bool              `gorm:"not null;default:false"`
	Contributions       ContributionsJSON `gorm:"type:jsonb;not null;default:'[]'"`
	ReminderFrequency   string            `gorm:"type:varchar(10);not null"`
	NextReminder        sql.NullTime      `gorm:"type:timestamptz"`
	CreatedAt           time.Time         `gorm:"not null"`
	UpdatedAt           time.Time         `gorm:"not null"`
	DeletedAt           gorm.DeletedAt    `gorm:"index"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	var nextReminder *time.Time
	if m.NextReminder.Valid {
		nextReminder = &m.NextReminder.Time
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.SavingsGoal{
		ID:                  m.ID,
		UserID:              m.UserID,
		Title:               m.Title,
		Description:         m.Description,
		TargetAmount:        m.TargetAmount,
		CurrentAmount:       m.CurrentAmount,
		TargetDate:          m.TargetDate,
		Category:            entity.GoalCategory(m.Category),
		Priority:            entity.GoalPriority(m.Priority),
		IsCompleted:         m.IsCompleted,
		MonthlyContribution: m.MonthlyContribution,
		AutoContribute:      m.AutoContribute,
		Contributions:       []entity.Contribution(m.Contributions),
		ReminderFrequency:   entity.ReminderFrequency(m.ReminderFrequency),
		NextReminder:        nextReminder,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain SavingsGoal entity.
func SavingsGoalFromEntity(g *entity.SavingsGoal) *SavingsGoalModel {
	var nextReminder sql.NullTime
	if g.NextReminder != nil {
		nextReminder = sql.NullTime{Time: *g.NextReminder, Valid: true}
	}

	return &SavingsGoalModel{
		ID:                  g.ID,
		UserID:              g.UserID,
		Title:               g.Title,
		Description:         g.Description,
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		TargetDate:          g.TargetDate,
		Category:            string(g.Category),
		Priority:            string(g.Priority),
		IsCompleted:         g.IsCompleted,
		MonthlyContribution: g.MonthlyContribution,
		AutoContribute:      g.AutoContribute,
		Contributions:       ContributionsJSON(g.Contributions),
		ReminderFrequency:   string(g.ReminderFrequency),
		NextReminder:        nextReminder,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}
