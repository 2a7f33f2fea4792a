package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/domain/entity"
)

func thresholdBudget(t *testing.T) *entity.Budget {
	t.Helper()
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
		{Name: "Travel", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
	}, start, start.Add(28*24*time.Hour))
	return b
}

func setSpent(b *entity.Budget, name string, amount int64) {
	cat := b.FindCategory(name)
	cat.SpentAmount = decimal.NewFromInt(amount)
	b.RecalculateTotalSpent()
}

func TestDetectCrossings_SingleCategoryCrossing(t *testing.T) {
	b := thresholdBudget(t)
	setSpent(b, "Groceries", 700) // 70%, below the default 80 threshold

	before := CaptureUsage(b)
	setSpent(b, "Groceries", 850) // 85%

	crossings := DetectCrossings(before, b)

	if len(crossings) != 1 {
		t.Fatalf("expected exactly 1 crossing, got %d", len(crossings))
	}
	c := crossings[0]
	if c.CategoryName != "Groceries" {
		t.Errorf("expected Groceries crossing, got %q", c.CategoryName)
	}
	if c.Usage != 85 {
		t.Errorf("expected usage 85, got %f", c.Usage)
	}
	if c.Threshold != entity.DefaultAlertThreshold {
		t.Errorf("expected threshold %d, got %d", entity.DefaultAlertThreshold, c.Threshold)
	}
}

func TestDetectCrossings_AlreadyAboveDoesNotRefire(t *testing.T) {
	b := thresholdBudget(t)
	setSpent(b, "Groceries", 850)

	before := CaptureUsage(b)
	setSpent(b, "Groceries", 900) // still above, no new crossing

	if crossings := DetectCrossings(before, b); len(crossings) != 0 {
		t.Fatalf("expected no crossings, got %d", len(crossings))
	}
}

func TestDetectCrossings_ReCrossingAfterDropRefires(t *testing.T) {
	b := thresholdBudget(t)
	setSpent(b, "Groceries", 850)

	// Drops back below (refund or deleted transaction), then crosses again.
	setSpent(b, "Groceries", 600)
	before := CaptureUsage(b)
	setSpent(b, "Groceries", 820)

	crossings := DetectCrossings(before, b)
	if len(crossings) != 1 {
		t.Fatalf("expected re-crossing to fire again, got %d crossings", len(crossings))
	}
}

func TestDetectCrossings_OverallCrossing(t *testing.T) {
	b := thresholdBudget(t)
	setSpent(b, "Groceries", 790)
	setSpent(b, "Travel", 790)
	// Both categories at 79%, overall at 79%.

	before := CaptureUsage(b)
	setSpent(b, "Groceries", 810)
	setSpent(b, "Travel", 810)

	crossings := DetectCrossings(before, b)

	// Two category crossings plus the overall one.
	if len(crossings) != 3 {
		t.Fatalf("expected 3 crossings, got %d", len(crossings))
	}

	var overall *Crossing
	for i := range crossings {
		if crossings[i].CategoryName == "" {
			overall = &crossings[i]
		}
	}
	if overall == nil {
		t.Fatal("expected an overall crossing with empty category name")
	}
	if !overall.SpentAmount.Equal(decimal.NewFromInt(1620)) {
		t.Errorf("expected overall spent 1620, got %s", overall.SpentAmount)
	}
	if !overall.BudgetAmount.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("expected overall budget 2000, got %s", overall.BudgetAmount)
	}
}

func TestDetectCrossings_ExactThresholdCounts(t *testing.T) {
	b := thresholdBudget(t)

	before := CaptureUsage(b)
	setSpent(b, "Groceries", 800) // exactly 80%

	crossings := DetectCrossings(before, b)
	if len(crossings) != 1 {
		t.Fatalf("expected landing exactly on the threshold to count, got %d crossings", len(crossings))
	}
}

func TestDetectCrossings_ZeroAllocationNeverCrosses(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	b := newTestBudget([]entity.BudgetCategory{
		{Name: "Other", BudgetAmount: decimal.Zero, IsActive: true},
	}, start, start.Add(28*24*time.Hour))

	before := CaptureUsage(b)
	b.Categories[0].SpentAmount = decimal.NewFromInt(500)
	b.RecalculateTotalSpent()

	if crossings := DetectCrossings(before, b); len(crossings) != 0 {
		t.Fatalf("expected zero-allocation category to never cross, got %d", len(crossings))
	}
}

func TestCaptureUsage_IncludesOverallKey(t *testing.T) {
	b := thresholdBudget(t)
	setSpent(b, "Groceries", 500)

	snap := CaptureUsage(b)

	if len(snap) != 3 {
		t.Fatalf("expected 3 snapshot entries, got %d", len(snap))
	}
	if snap["Groceries"] != 50 {
		t.Errorf("expected Groceries usage 50, got %f", snap["Groceries"])
	}
	if snap[OverallUsageKey] != 25 {
		t.Errorf("expected overall usage 25, got %f", snap[OverallUsageKey])
	}
}
