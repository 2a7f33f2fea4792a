// Package savingsgoal contains savings-goal use cases: goal CRUD,
// contributions and progress tracking.
package savingsgoal

import (
	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// ProgressNotifier receives goal progress changes produced by contributions.
// Implementations must not block; emission is best-effort and must never fail
// the triggering operation.
type ProgressNotifier interface {
	GoalContributionRecorded(userID uuid.UUID, goal *entity.SavingsGoal, beforeProgress float64)
}

// MilestonesCrossed returns the milestone percentages passed when progress
// moves from before to after. A milestone counts when progress lands exactly
// on it.
func MilestonesCrossed(before, after float64) []int {
	var crossed []int
	for _, m := range entity.Milestones {
		if before < float64(m) && after >= float64(m) {
			crossed = append(crossed, m)
		}
	}
	return crossed
}
