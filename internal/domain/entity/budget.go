// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence label of a budget. It is informational only
// and does not drive automatic rollover.
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

// BudgetCategoryNames is the fixed set of names a budget category may use.
var BudgetCategoryNames = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Entertainment",
	"Bills & Utilities",
	"Healthcare",
	"Education",
	"Travel",
	"Investment",
	"Insurance",
	"Rent/EMI",
	"Groceries",
	"Other",
}

// FallbackCategoryName is the category that absorbs expenses whose category
// does not match any budget category. The match is an exact literal.
const FallbackCategoryName = "Other"

// DefaultAlertThreshold is the usage percentage at which alerts fire by default.
const DefaultAlertThreshold = 80

// BudgetCategory is one named slice of a budget's spending plan.
type BudgetCategory struct {
	Name         string          `json:"name"`
	BudgetAmount decimal.Decimal `json:"budget_amount"`
	SpentAmount  decimal.Decimal `json:"spent_amount"`
	IsActive     bool            `json:"is_active"`
}

// BudgetNotificationSettings controls which budget notifications are emitted.
type BudgetNotificationSettings struct {
	Enabled        bool `json:"enabled"`
	ThresholdAlert bool `json:"threshold_alert"`
	DailyReminder  bool `json:"daily_reminder"`
}

// DefaultBudgetNotificationSettings returns the settings applied when a
// budget is created without explicit notification preferences.
func DefaultBudgetNotificationSettings() BudgetNotificationSettings {
	return BudgetNotificationSettings{
		Enabled:        true,
		ThresholdAlert: true,
		DailyReminder:  false,
	}
}

// Budget represents a named spending plan over an inclusive date window,
// decomposed into categories with allocated and observed-spent amounts.
type Budget struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Period         BudgetPeriod
	StartDate      time.Time
	EndDate        time.Time
	Categories     []BudgetCategory
	TotalBudget    decimal.Decimal
	TotalSpent     decimal.Decimal
	AlertThreshold int
	IsActive       bool
	Notifications  BudgetNotificationSettings
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity. TotalBudget is computed from the
// category allocations; spent amounts start at zero.
func NewBudget(
	userID uuid.UUID,
	name string,
	period BudgetPeriod,
	startDate, endDate time.Time,
	categories []BudgetCategory,
	alertThreshold int,
	notifications BudgetNotificationSettings,
) *Budget {
	now := time.Now().UTC()

	b := &Budget{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Period:         period,
		StartDate:      startDate,
		EndDate:        endDate,
		Categories:     categories,
		TotalSpent:     decimal.Zero,
		AlertThreshold: alertThreshold,
		IsActive:       true,
		Notifications:  notifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	b.RecalculateTotalBudget()
	return b
}

// RecalculateTotalBudget recomputes TotalBudget from the category allocations.
// It must be called after any category-mutating write.
func (b *Budget) RecalculateTotalBudget() {
	total := decimal.Zero
	for _, cat := range b.Categories {
		total = total.Add(cat.BudgetAmount)
	}
	b.TotalBudget = total
}

// RecalculateTotalSpent recomputes TotalSpent from the category spent amounts.
func (b *Budget) RecalculateTotalSpent() {
	total := decimal.Zero
	for _, cat := range b.Categories {
		total = total.Add(cat.SpentAmount)
	}
	b.TotalSpent = total
}

// UsagePercentage returns overall budget usage as a percentage, capped at 100
// for display. Returns 0 when nothing is allocated.
func (b *Budget) UsagePercentage() float64 {
	return usagePercent(b.TotalSpent, b.TotalBudget)
}

// RemainingBudget returns the unspent allocation, floored at zero.
func (b *Budget) RemainingBudget() decimal.Decimal {
	remaining := b.TotalBudget.Sub(b.TotalSpent)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// UncappedUsagePercentage returns overall usage without the display cap.
// Used for threshold-crossing detection, where over-100 values matter.
func (b *Budget) UncappedUsagePercentage() float64 {
	if !b.TotalBudget.IsPositive() {
		return 0
	}
	ratio, _ := b.TotalSpent.Div(b.TotalBudget).Float64()
	return ratio * 100
}

// UsagePercentage returns category usage as a percentage, capped at 100.
func (c *BudgetCategory) UsagePercentage() float64 {
	return usagePercent(c.SpentAmount, c.BudgetAmount)
}

// UncappedUsagePercentage returns category usage without the display cap.
func (c *BudgetCategory) UncappedUsagePercentage() float64 {
	if !c.BudgetAmount.IsPositive() {
		return 0
	}
	ratio, _ := c.SpentAmount.Div(c.BudgetAmount).Float64()
	return ratio * 100
}

// FindCategory returns the category whose name matches case-insensitively,
// or nil if none matches.
func (b *Budget) FindCategory(name string) *BudgetCategory {
	for i := range b.Categories {
		if strings.EqualFold(b.Categories[i].Name, name) {
			return &b.Categories[i]
		}
	}
	return nil
}

// FallbackCategory returns the category literally named "Other", or nil.
func (b *Budget) FallbackCategory() *BudgetCategory {
	for i := range b.Categories {
		if b.Categories[i].Name == FallbackCategoryName {
			return &b.Categories[i]
		}
	}
	return nil
}

// CoversDate reports whether the given time falls inside the budget's
// inclusive [StartDate, EndDate] window.
func (b *Budget) CoversDate(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// IsValidBudgetPeriod reports whether the period label is one of the fixed set.
func IsValidBudgetPeriod(period BudgetPeriod) bool {
	switch period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	}
	return false
}

// IsValidBudgetCategoryName reports whether the name is one of the fixed set.
func IsValidBudgetCategoryName(name string) bool {
	for _, n := range BudgetCategoryNames {
		if n == name {
			return true
		}
	}
	return false
}

func usagePercent(spent, allocated decimal.Decimal) float64 {
	if !allocated.IsPositive() {
		return 0
	}
	ratio, _ := spent.Div(allocated).Float64()
	pct := ratio * 100
	if pct > 100 {
		return 100
	}
	return pct
}
