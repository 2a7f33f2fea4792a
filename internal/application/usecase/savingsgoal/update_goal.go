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

// UpdateGoalInput represents a partial goal update. Nil fields are unchanged.
type UpdateGoalInput struct {
	UserID              uuid.UUID
	GoalID              uuid.UUID
	Title               *string
	Description         *string
	TargetAmount        *decimal.Decimal
	TargetDate          *time.Time
	Category            *entity.GoalCategory
	Priority            *entity.GoalPriority
	MonthlyContribution *decimal.Decimal
	AutoContribute      *bool
	ReminderFrequency   *entity.ReminderFrequency
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles savings goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.SavingsGoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.SavingsGoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute applies the partial update. Changing the target amount re-derives
// the completion flag, so lowering the target below the saved amount marks
// the goal completed.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	g, err := uc.goalRepo.FindByIDAndUser(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal title is required",
				domainerror.ErrMissingGoalTitle,
			)
		}
		g.Title = title
	}

	if input.Description != nil {
		g.Description = strings.TrimSpace(*input.Description)
	}

	if input.TargetAmount != nil {
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		g.TargetAmount = *input.TargetAmount
		g.RefreshCompletion()
	}

	if input.TargetDate != nil {
		g.TargetDate = *input.TargetDate
	}

	if input.Category != nil {
		if !entity.IsValidGoalCategory(*input.Category) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalCategory,
				fmt.Sprintf("category %q is not a recognized goal category", *input.Category),
				domainerror.ErrInvalidGoalCategory,
			)
		}
		g.Category = *input.Category
	}

	if input.Priority != nil {
		if !entity.IsValidGoalPriority(*input.Priority) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				fmt.Sprintf("priority %q is not a recognized goal priority", *input.Priority),
				domainerror.ErrInvalidGoalPriority,
			)
		}
		g.Priority = *input.Priority
	}

	if input.MonthlyContribution != nil {
		if input.MonthlyContribution.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidContribution,
				"monthly contribution must not be negative",
				domainerror.ErrInvalidContribution,
			)
		}
		g.MonthlyContribution = *input.MonthlyContribution
	}

	if input.AutoContribute != nil {
		g.AutoContribute = *input.AutoContribute
	}

	if input.ReminderFrequency != nil {
		if !entity.IsValidReminderFrequency(*input.ReminderFrequency) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidReminderFrequency,
				fmt.Sprintf("reminder frequency %q is not recognized", *input.ReminderFrequency),
				domainerror.ErrInvalidReminderFrequency,
			)
		}
		g.ReminderFrequency = *input.ReminderFrequency
	}

	g.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: g}, nil
}
