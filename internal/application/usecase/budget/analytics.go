// Package budget contains budget-related use cases: spend synchronization,
// category apportionment and health-metric projection.
package budget

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// CategoryAnalysis is the derived, non-persisted view of a single budget
// category. UsagePercentage is capped at 100 for display; OverBudgetAmount
// carries the uncapped excess.
type CategoryAnalysis struct {
	Name             string          `json:"name"`
	BudgetAmount     decimal.Decimal `json:"budget_amount"`
	SpentAmount      decimal.Decimal `json:"spent_amount"`
	RemainingAmount  decimal.Decimal `json:"remaining_amount"`
	UsagePercentage  float64         `json:"usage_percentage"`
	IsOverBudget     bool            `json:"is_over_budget"`
	OverBudgetAmount decimal.Decimal `json:"over_budget_amount"`
}

// HealthMetrics is the derived, non-persisted projection of a budget's pace.
type HealthMetrics struct {
	DaysInPeriod             int     `json:"days_in_period"`
	DaysElapsed              int     `json:"days_elapsed"`
	DaysRemaining            int     `json:"days_remaining"`
	ExpectedSpending         float64 `json:"expected_spending"`
	ActualSpending           float64 `json:"actual_spending"`
	SpendingVariance         float64 `json:"spending_variance"`
	DailySpendingRate        float64 `json:"daily_spending_rate"`
	ProjectedSpending        float64 `json:"projected_spending"`
	IsOnTrack                bool    `json:"is_on_track"`
	RecommendedDailySpending float64 `json:"recommended_daily_spending"`
}

// BuildCategoryAnalysis derives the per-category analysis list from a budget
// snapshot, preserving category order.
func BuildCategoryAnalysis(b *entity.Budget) []CategoryAnalysis {
	analysis := make([]CategoryAnalysis, len(b.Categories))
	for i, cat := range b.Categories {
		remaining := cat.BudgetAmount.Sub(cat.SpentAmount)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		over := cat.SpentAmount.Sub(cat.BudgetAmount)
		if over.IsNegative() {
			over = decimal.Zero
		}

		analysis[i] = CategoryAnalysis{
			Name:             cat.Name,
			BudgetAmount:     cat.BudgetAmount,
			SpentAmount:      cat.SpentAmount,
			RemainingAmount:  remaining,
			UsagePercentage:  cat.UsagePercentage(),
			IsOverBudget:     cat.SpentAmount.GreaterThan(cat.BudgetAmount),
			OverBudgetAmount: over,
		}
	}
	return analysis
}

// ComputeHealthMetrics derives pace metrics from a budget snapshot and the
// current wall-clock time. All divisions are guarded: a zero-length period
// yields zero expected spending and a recommendation of the full remaining
// allocation; zero elapsed days yield a zero daily rate.
func ComputeHealthMetrics(b *entity.Budget, now time.Time) HealthMetrics {
	daysInPeriod := wholeDays(b.StartDate, b.EndDate)

	daysElapsed := wholeDays(b.StartDate, now)
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	daysRemaining := daysInPeriod - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	totalBudget, _ := b.TotalBudget.Float64()
	totalSpent, _ := b.TotalSpent.Float64()

	var expectedSpending float64
	if daysInPeriod > 0 {
		effectiveDays := daysElapsed
		if effectiveDays > daysInPeriod {
			effectiveDays = daysInPeriod
		}
		expectedSpending = totalBudget * float64(effectiveDays) / float64(daysInPeriod)
	}

	var dailyRate float64
	if daysElapsed > 0 {
		dailyRate = totalSpent / float64(daysElapsed)
	}

	projected := dailyRate * float64(daysInPeriod)

	remaining := totalBudget - totalSpent
	if remaining < 0 {
		remaining = 0
	}
	divisor := daysRemaining
	if divisor < 1 {
		divisor = 1
	}

	return HealthMetrics{
		DaysInPeriod:             daysInPeriod,
		DaysElapsed:              daysElapsed,
		DaysRemaining:            daysRemaining,
		ExpectedSpending:         expectedSpending,
		ActualSpending:           totalSpent,
		SpendingVariance:         totalSpent - expectedSpending,
		DailySpendingRate:        dailyRate,
		ProjectedSpending:        projected,
		IsOnTrack:                projected <= totalBudget,
		RecommendedDailySpending: remaining / float64(divisor),
	}
}

// wholeDays returns the ceiling of the span between two times in 24h days.
// Negative spans produce negative results; callers clamp where needed.
func wholeDays(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
