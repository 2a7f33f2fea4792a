package savingsgoal

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

// CreateGoalInput represents the input for savings goal creation.
type CreateGoalInput struct {
	UserID              uuid.UUID
	Title               string
	Description         string
	TargetAmount        decimal.Decimal
	TargetDate          time.Time
	Category            entity.GoalCategory
	Priority            entity.GoalPriority
	MonthlyContribution decimal.Decimal
	AutoContribute      bool
	ReminderFrequency   entity.ReminderFrequency
}

// CreateGoalOutput represents the output of savings goal creation.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.SavingsGoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal title is required",
			domainerror.ErrMissingGoalTitle,
		)
	}

	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if !entity.IsValidGoalCategory(input.Category) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalCategory,
			fmt.Sprintf("category %q is not a recognized goal category", input.Category),
			domainerror.ErrInvalidGoalCategory,
		)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.GoalPriorityMedium
	}
	if !entity.IsValidGoalPriority(priority) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalPriority,
			fmt.Sprintf("priority %q is not a recognized goal priority", priority),
			domainerror.ErrInvalidGoalPriority,
		)
	}

	frequency := input.ReminderFrequency
	if frequency == "" {
		frequency = entity.ReminderWeekly
	}
	if !entity.IsValidReminderFrequency(frequency) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidReminderFrequency,
			fmt.Sprintf("reminder frequency %q is not recognized", frequency),
			domainerror.ErrInvalidReminderFrequency,
		)
	}

	if input.MonthlyContribution.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"monthly contribution must not be negative",
			domainerror.ErrInvalidContribution,
		)
	}

	g := entity.NewSavingsGoal(
		input.UserID,
		strings.TrimSpace(input.Title),
		strings.TrimSpace(input.Description),
		input.TargetAmount,
		input.TargetDate,
		input.Category,
		priority,
		input.MonthlyContribution,
		input.AutoContribute,
		frequency,
	)

	if err := uc.goalRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateGoalOutput{Goal: g}, nil
}
