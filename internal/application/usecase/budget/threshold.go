package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// OverallUsageKey identifies the budget-wide usage entry in a usage snapshot.
// Category names come from a fixed set that can never collide with it.
const OverallUsageKey = "__overall__"

// UsageSnapshot maps category names (plus OverallUsageKey) to uncapped usage
// percentages at a point in time.
type UsageSnapshot map[string]float64

// Crossing records a single threshold crossing produced by a sync: a category
// (or the overall budget, when CategoryName is empty) whose usage moved from
// below the alert threshold to at-or-above it.
type Crossing struct {
	CategoryName string
	Usage        float64
	Threshold    int
	SpentAmount  decimal.Decimal
	BudgetAmount decimal.Decimal
}

// ThresholdAlerter receives threshold crossings detected during a sync.
// Implementations must not block; emission is best-effort and must never
// fail the triggering operation.
type ThresholdAlerter interface {
	BudgetThresholdCrossed(userID uuid.UUID, budget *entity.Budget, crossings []Crossing)
}

// CaptureUsage snapshots uncapped usage percentages for every category and
// for the budget overall.
func CaptureUsage(b *entity.Budget) UsageSnapshot {
	snapshot := make(UsageSnapshot, len(b.Categories)+1)
	for i := range b.Categories {
		snapshot[b.Categories[i].Name] = b.Categories[i].UncappedUsagePercentage()
	}
	snapshot[OverallUsageKey] = b.UncappedUsagePercentage()
	return snapshot
}

// DetectCrossings compares a pre-sync usage snapshot against the budget's
// post-sync state and returns one Crossing per category (and the overall
// budget) whose usage moved from below the threshold to at-or-above it.
// Re-crossing after a drop back below the threshold yields a fresh Crossing;
// there is deliberately no dedupe for budget alerts.
func DetectCrossings(before UsageSnapshot, b *entity.Budget) []Crossing {
	threshold := float64(b.AlertThreshold)
	var crossings []Crossing

	for i := range b.Categories {
		cat := &b.Categories[i]
		usage := cat.UncappedUsagePercentage()
		if usage >= threshold && before[cat.Name] < threshold {
			crossings = append(crossings, Crossing{
				CategoryName: cat.Name,
				Usage:        usage,
				Threshold:    b.AlertThreshold,
				SpentAmount:  cat.SpentAmount,
				BudgetAmount: cat.BudgetAmount,
			})
		}
	}

	overall := b.UncappedUsagePercentage()
	if overall >= threshold && before[OverallUsageKey] < threshold {
		crossings = append(crossings, Crossing{
			Usage:        overall,
			Threshold:    b.AlertThreshold,
			SpentAmount:  b.TotalSpent,
			BudgetAmount: b.TotalBudget,
		})
	}

	return crossings
}
