package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/persistence/model"
)

// savingsGoalRepository implements the adapter.SavingsGoalRepository interface.
type savingsGoalRepository struct {
	db *gorm.DB
}

// NewSavingsGoalRepository creates a new savings goal repository instance.
func NewSavingsGoalRepository(db *gorm.DB) adapter.SavingsGoalRepository {
	return &savingsGoalRepository{
		db: db,
	}
}

// Create creates a new savings goal in the database.
func (r *savingsGoalRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a goal by id, scoped to its owner.
func (r *savingsGoalRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all goals for a user, newest first.
func (r *savingsGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// Update updates an existing goal in the database.
func (r *savingsGoalRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a goal, scoped to its owner.
func (r *savingsGoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavingsGoalModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// GetStats returns aggregate statistics across the user's goals. Aggregation
// happens in memory since progress capping lives on the entity.
func (r *savingsGoalRepository) GetStats(ctx context.Context, userID uuid.UUID) (*entity.SavingsGoalStats, error) {
	goals, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &entity.SavingsGoalStats{
		TotalGoals:           len(goals),
		TotalTargetAmount:    decimal.Zero,
		TotalCurrentAmount:   decimal.Zero,
		TotalRemainingAmount: decimal.Zero,
	}
	for _, goal := range goals {
		if goal.IsCompleted {
			stats.CompletedGoals++
		} else {
			stats.ActiveGoals++
		}
		stats.TotalTargetAmount = stats.TotalTargetAmount.Add(goal.TargetAmount)
		stats.TotalCurrentAmount = stats.TotalCurrentAmount.Add(goal.CurrentAmount)
		stats.TotalRemainingAmount = stats.TotalRemainingAmount.Add(goal.RemainingAmount())
	}

	if stats.TotalTargetAmount.IsPositive() {
		progress, _ := stats.TotalCurrentAmount.
			Div(stats.TotalTargetAmount).
			Mul(decimal.NewFromInt(100)).
			Float64()
		stats.OverallProgress = progress
	}
	return stats, nil
}
