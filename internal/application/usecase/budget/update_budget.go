package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for a partial budget update.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	UserID         uuid.UUID
	BudgetID       uuid.UUID
	Name           *string
	Period         *entity.BudgetPeriod
	StartDate      *time.Time
	EndDate        *time.Time
	Categories     []CategoryInput // nil leaves categories unchanged
	AlertThreshold *int
	IsActive       *bool
	Notifications  *entity.BudgetNotificationSettings
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update. Replacing the category list resets the
// spent amounts; the next sync recomputes them from the transaction store.
// Totals are recomputed on every category-affecting write.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	b, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetName,
				"budget name is required",
				domainerror.ErrMissingBudgetName,
			)
		}
		b.Name = name
	}

	if input.Period != nil {
		if !entity.IsValidBudgetPeriod(*input.Period) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'weekly', 'monthly', 'quarterly', or 'yearly'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		b.Period = *input.Period
	}

	if input.StartDate != nil {
		b.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		b.EndDate = *input.EndDate
	}
	if b.EndDate.Before(b.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"end date must not be before start date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	if input.Categories != nil {
		categories, err := buildCategories(input.Categories)
		if err != nil {
			return nil, err
		}
		b.Categories = categories
		b.RecalculateTotalBudget()
		b.RecalculateTotalSpent()
	}

	if input.AlertThreshold != nil {
		if *input.AlertThreshold < 1 || *input.AlertThreshold > 100 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidAlertThreshold,
				"alert threshold must be between 1 and 100",
				domainerror.ErrInvalidAlertThreshold,
			)
		}
		b.AlertThreshold = *input.AlertThreshold
	}

	if input.IsActive != nil {
		b.IsActive = *input.IsActive
	}
	if input.Notifications != nil {
		b.Notifications = *input.Notifications
	}

	b.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: b}, nil
}
