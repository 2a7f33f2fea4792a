package budget

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/domain/entity"
)

func newTestBudget(categories []entity.BudgetCategory, start, end time.Time) *entity.Budget {
	return entity.NewBudget(
		uuid.New(),
		"Monthly Plan",
		entity.BudgetPeriodMonthly,
		start,
		end,
		categories,
		entity.DefaultAlertThreshold,
		entity.DefaultBudgetNotificationSettings(),
	)
}

func TestComputeHealthMetrics_ProjectionScenario(t *testing.T) {
	// 30-day window, 10 days elapsed, 10000 allocated, 4000 spent.
	now := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	start := now.Add(-10 * 24 * time.Hour)
	end := start.Add(30 * 24 * time.Hour)

	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(10000), IsActive: true},
	}, start, end)
	b.TotalSpent = decimal.NewFromInt(4000)

	m := ComputeHealthMetrics(b, now)

	if m.DaysInPeriod != 30 {
		t.Errorf("expected 30 days in period, got %d", m.DaysInPeriod)
	}
	if m.DaysElapsed != 10 {
		t.Errorf("expected 10 days elapsed, got %d", m.DaysElapsed)
	}
	if m.DaysRemaining != 20 {
		t.Errorf("expected 20 days remaining, got %d", m.DaysRemaining)
	}
	if math.Abs(m.ExpectedSpending-3333.3333333333335) > 0.01 {
		t.Errorf("expected expected spending ~3333.33, got %f", m.ExpectedSpending)
	}
	if m.DailySpendingRate != 400 {
		t.Errorf("expected daily rate 400, got %f", m.DailySpendingRate)
	}
	if m.ProjectedSpending != 12000 {
		t.Errorf("expected projected spending 12000, got %f", m.ProjectedSpending)
	}
	if m.IsOnTrack {
		t.Error("expected budget to be off track (12000 > 10000)")
	}
	if m.RecommendedDailySpending != 300 {
		t.Errorf("expected recommended daily spending 300, got %f", m.RecommendedDailySpending)
	}
	if math.Abs(m.SpendingVariance-(4000-m.ExpectedSpending)) > 0.001 {
		t.Errorf("unexpected variance %f", m.SpendingVariance)
	}
}

func TestComputeHealthMetrics_ZeroLengthPeriod(t *testing.T) {
	// startDate == endDate must not divide by zero or produce NaN/Inf.
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Other", BudgetAmount: decimal.NewFromInt(500), IsActive: true},
	}, day, day)
	b.TotalSpent = decimal.NewFromInt(100)

	m := ComputeHealthMetrics(b, day)

	if m.DaysInPeriod != 0 {
		t.Errorf("expected 0 days in period, got %d", m.DaysInPeriod)
	}
	if m.ExpectedSpending != 0 {
		t.Errorf("expected expected spending 0, got %f", m.ExpectedSpending)
	}
	// Remaining allocation is 400; with no days left the recommendation is
	// the full remaining amount.
	if m.RecommendedDailySpending != 400 {
		t.Errorf("expected recommended daily spending 400, got %f", m.RecommendedDailySpending)
	}

	for name, v := range map[string]float64{
		"expected_spending":          m.ExpectedSpending,
		"daily_spending_rate":        m.DailySpendingRate,
		"projected_spending":         m.ProjectedSpending,
		"recommended_daily_spending": m.RecommendedDailySpending,
		"spending_variance":          m.SpendingVariance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s is not finite: %f", name, v)
		}
	}
}

func TestComputeHealthMetrics_BeforePeriodStart(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30 * 24 * time.Hour)
	now := start.Add(-48 * time.Hour)

	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Travel", BudgetAmount: decimal.NewFromInt(3000), IsActive: true},
	}, start, end)

	m := ComputeHealthMetrics(b, now)

	if m.DaysElapsed != 0 {
		t.Errorf("expected elapsed days clamped to 0, got %d", m.DaysElapsed)
	}
	if m.DailySpendingRate != 0 {
		t.Errorf("expected zero daily rate before period start, got %f", m.DailySpendingRate)
	}
	if !m.IsOnTrack {
		t.Error("expected untouched budget to be on track")
	}
}

func TestComputeHealthMetrics_ZeroAllocationIsOnTrack(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(10 * 24 * time.Hour)

	b := newTestBudget(nil, start, end)

	m := ComputeHealthMetrics(b, start.Add(5*24*time.Hour))

	// 0 projected <= 0 allocated: on-track by definition.
	if !m.IsOnTrack {
		t.Error("expected zero-allocation zero-spend budget to be on track")
	}
	if m.RecommendedDailySpending != 0 {
		t.Errorf("expected recommended daily spending 0, got %f", m.RecommendedDailySpending)
	}
}

func TestBuildCategoryAnalysis(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(30 * 24 * time.Hour)

	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
		{Name: "Entertainment", BudgetAmount: decimal.NewFromInt(200), IsActive: true},
		{Name: "Other", BudgetAmount: decimal.Zero, IsActive: true},
	}, start, end)
	b.Categories[0].SpentAmount = decimal.NewFromInt(400)
	b.Categories[1].SpentAmount = decimal.NewFromInt(350) // over budget
	b.RecalculateTotalSpent()

	analysis := BuildCategoryAnalysis(b)

	if len(analysis) != 3 {
		t.Fatalf("expected 3 analysis entries, got %d", len(analysis))
	}

	t.Run("within budget", func(t *testing.T) {
		a := analysis[0]
		if a.UsagePercentage != 40 {
			t.Errorf("expected usage 40%%, got %f", a.UsagePercentage)
		}
		if !a.RemainingAmount.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected remaining 600, got %s", a.RemainingAmount)
		}
		if a.IsOverBudget {
			t.Error("expected category not over budget")
		}
		if !a.OverBudgetAmount.IsZero() {
			t.Errorf("expected zero over-budget amount, got %s", a.OverBudgetAmount)
		}
	})

	t.Run("over budget caps usage but not excess", func(t *testing.T) {
		a := analysis[1]
		if a.UsagePercentage != 100 {
			t.Errorf("expected usage capped at 100%%, got %f", a.UsagePercentage)
		}
		if !a.IsOverBudget {
			t.Error("expected category over budget")
		}
		if !a.OverBudgetAmount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected over-budget amount 150, got %s", a.OverBudgetAmount)
		}
		if !a.RemainingAmount.IsZero() {
			t.Errorf("expected remaining floored at 0, got %s", a.RemainingAmount)
		}
	})

	t.Run("zero allocation", func(t *testing.T) {
		a := analysis[2]
		if a.UsagePercentage != 0 {
			t.Errorf("expected usage 0%% for zero allocation, got %f", a.UsagePercentage)
		}
	})
}

func TestBudgetTotalsConservation(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1200), IsActive: true},
		{Name: "Travel", BudgetAmount: decimal.NewFromInt(800), IsActive: true},
	}, start, start.Add(30*24*time.Hour))

	if !b.TotalBudget.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected total budget 2000, got %s", b.TotalBudget)
	}

	b.Categories[0].SpentAmount = decimal.NewFromFloat(99.5)
	b.Categories[1].SpentAmount = decimal.NewFromFloat(0.5)
	b.RecalculateTotalSpent()

	if !b.TotalSpent.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected total spent 100, got %s", b.TotalSpent)
	}
}
