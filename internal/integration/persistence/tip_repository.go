package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/persistence/model"
)

// tipRepository implements the adapter.TipRepository interface.
type tipRepository struct {
	db *gorm.DB
}

// NewTipRepository creates a new tip repository instance.
func NewTipRepository(db *gorm.DB) adapter.TipRepository {
	return &tipRepository{
		db: db,
	}
}

// Create creates a new tip in the database.
func (r *tipRepository) Create(ctx context.Context, tip *entity.Tip) error {
	tipModel := model.TipFromEntity(tip)
	result := r.db.WithContext(ctx).Create(tipModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// List retrieves tips, newest first.
func (r *tipRepository) List(ctx context.Context, onlyActive bool) ([]*entity.Tip, error) {
	query := r.db.WithContext(ctx)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var tipModels []model.TipModel
	result := query.Order("created_at DESC").Find(&tipModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tips := make([]*entity.Tip, len(tipModels))
	for i, tm := range tipModels {
		tips[i] = tm.ToEntity()
	}
	return tips, nil
}

// FindByID retrieves a tip by its ID.
func (r *tipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tip, error) {
	var tipModel model.TipModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tipModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTipNotFound
		}
		return nil, result.Error
	}
	return tipModel.ToEntity(), nil
}

// Update updates an existing tip in the database.
func (r *tipRepository) Update(ctx context.Context, tip *entity.Tip) error {
	tipModel := model.TipFromEntity(tip)
	result := r.db.WithContext(ctx).Save(tipModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a tip.
func (r *tipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TipModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTipNotFound
	}
	return nil
}
