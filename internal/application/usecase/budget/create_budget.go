package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// CategoryInput represents one category allocation in a create/update request.
type CategoryInput struct {
	Name         string
	BudgetAmount decimal.Decimal
	IsActive     *bool // Optional, defaults to true
}

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID         uuid.UUID
	Name           string
	Period         entity.BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	Categories     []CategoryInput
	AlertThreshold *int // Optional, defaults to 80
	Notifications  *entity.BudgetNotificationSettings
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation. TotalBudget is always recomputed
// from the category allocations, never taken from the caller.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetName,
			"budget name is required",
			domainerror.ErrMissingBudgetName,
		)
	}

	if !entity.IsValidBudgetPeriod(input.Period) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'weekly', 'monthly', 'quarterly', or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"end date must not be before start date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	categories, err := buildCategories(input.Categories)
	if err != nil {
		return nil, err
	}

	threshold := entity.DefaultAlertThreshold
	if input.AlertThreshold != nil {
		threshold = *input.AlertThreshold
	}
	if threshold < 1 || threshold > 100 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAlertThreshold,
			"alert threshold must be between 1 and 100",
			domainerror.ErrInvalidAlertThreshold,
		)
	}

	notifications := entity.DefaultBudgetNotificationSettings()
	if input.Notifications != nil {
		notifications = *input.Notifications
	}

	b := entity.NewBudget(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.Period,
		input.StartDate,
		input.EndDate,
		categories,
		threshold,
		notifications,
	)

	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: b}, nil
}

// buildCategories validates category inputs and converts them into entities.
// An empty list is allowed: such a budget has a zero total and absorbs no spend.
func buildCategories(inputs []CategoryInput) ([]entity.BudgetCategory, error) {
	categories := make([]entity.BudgetCategory, 0, len(inputs))
	for _, in := range inputs {
		if !entity.IsValidBudgetCategoryName(in.Name) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				fmt.Sprintf("category %q is not a recognized budget category", in.Name),
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		if in.BudgetAmount.IsNegative() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeNegativeBudgetAmount,
				fmt.Sprintf("category %q has a negative allocation", in.Name),
				domainerror.ErrNegativeBudgetAmount,
			)
		}

		active := true
		if in.IsActive != nil {
			active = *in.IsActive
		}

		categories = append(categories, entity.BudgetCategory{
			Name:         in.Name,
			BudgetAmount: in.BudgetAmount,
			SpentAmount:  decimal.Zero,
			IsActive:     active,
		})
	}
	return categories, nil
}
