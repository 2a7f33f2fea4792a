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

// ContributeInput represents the input for recording a goal contribution.
type ContributeInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
	Amount decimal.Decimal
	Note   string
}

// ContributeOutput represents the output of recording a goal contribution.
type ContributeOutput struct {
	Goal               *entity.SavingsGoal
	ProgressPercentage float64
	MilestonesCrossed  []int
}

// ContributeUseCase records a contribution toward a savings goal and reports
// progress changes to the notifier.
type ContributeUseCase struct {
	goalRepo adapter.SavingsGoalRepository
	notifier ProgressNotifier
}

// NewContributeUseCase creates a new ContributeUseCase instance.
// The notifier may be nil, in which case progress changes are not reported.
func NewContributeUseCase(goalRepo adapter.SavingsGoalRepository, notifier ProgressNotifier) *ContributeUseCase {
	return &ContributeUseCase{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

// Execute records the contribution. The pre-contribution progress is captured
// so the notifier can tell which milestones this contribution crossed.
func (uc *ContributeUseCase) Execute(ctx context.Context, input ContributeInput) (*ContributeOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	g, err := uc.goalRepo.FindByIDAndUser(ctx, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	before := g.UncappedProgressPercentage()

	g.AddContribution(input.Amount, strings.TrimSpace(input.Note))
	g.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to persist contribution: %w", err)
	}

	if uc.notifier != nil {
		uc.notifier.GoalContributionRecorded(input.UserID, g, before)
	}

	return &ContributeOutput{
		Goal:               g,
		ProgressPercentage: g.ProgressPercentage(),
		MilestonesCrossed:  MilestonesCrossed(before, g.UncappedProgressPercentage()),
	}, nil
}
