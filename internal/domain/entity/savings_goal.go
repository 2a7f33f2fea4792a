// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCategory classifies what a savings goal is for.
type GoalCategory string

const (
	GoalCategoryEmergencyFund GoalCategory = "emergency-fund"
	GoalCategoryVacation      GoalCategory = "vacation"
	GoalCategoryHomePurchase  GoalCategory = "home-purchase"
	GoalCategoryVehicle       GoalCategory = "vehicle"
	GoalCategoryEducation     GoalCategory = "education"
	GoalCategoryWedding       GoalCategory = "wedding"
	GoalCategoryRetirement    GoalCategory = "retirement"
	GoalCategoryInvestment    GoalCategory = "investment"
	GoalCategoryDebtPayoff    GoalCategory = "debt-payoff"
	GoalCategoryOther         GoalCategory = "other"
)

// GoalPriority represents the importance of a savings goal.
type GoalPriority string

const (
	GoalPriorityLow      GoalPriority = "low"
	GoalPriorityMedium   GoalPriority = "medium"
	GoalPriorityHigh     GoalPriority = "high"
	GoalPriorityCritical GoalPriority = "critical"
)

// ReminderFrequency controls how often goal reminders are scheduled.
type ReminderFrequency string

const (
	ReminderDaily   ReminderFrequency = "daily"
	ReminderWeekly  ReminderFrequency = "weekly"
	ReminderMonthly ReminderFrequency = "monthly"
	ReminderNever   ReminderFrequency = "never"
)

// Milestones are the fixed progress percentages at which a one-time
// achievement notification is due.
var Milestones = []int{25, 50, 75, 100}

// Contribution is a single deposit toward a savings goal.
type Contribution struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note,omitempty"`
}

// SavingsGoal represents a target amount a user wants to save by a date.
type SavingsGoal struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Title               string
	Description         string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	TargetDate          time.Time
	Category            GoalCategory
	Priority            GoalPriority
	IsCompleted         bool
	MonthlyContribution decimal.Decimal
	AutoContribute      bool
	Contributions       []Contribution
	ReminderFrequency   ReminderFrequency
	NextReminder        *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time // Soft-delete support
}

// NewSavingsGoal creates a new SavingsGoal entity.
func NewSavingsGoal(
	userID uuid.UUID,
	title, description string,
	targetAmount decimal.Decimal,
	targetDate time.Time,
	category GoalCategory,
	priority GoalPriority,
	monthlyContribution decimal.Decimal,
	autoContribute bool,
	reminderFrequency ReminderFrequency,
) *SavingsGoal {
	now := time.Now().UTC()

	g := &SavingsGoal{
		ID:                  uuid.New(),
		UserID:              userID,
		Title:               title,
		Description:         description,
		TargetAmount:        targetAmount,
		CurrentAmount:       decimal.Zero,
		TargetDate:          targetDate,
		Category:            category,
		Priority:            priority,
		MonthlyContribution: monthlyContribution,
		AutoContribute:      autoContribute,
		ReminderFrequency:   reminderFrequency,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	g.NextReminder = nextReminderAfter(now, reminderFrequency)
	return g
}

// ProgressPercentage returns goal progress as a percentage, capped at 100
// for display. Returns 0 when the target is not positive.
func (g *SavingsGoal) ProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	ratio, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	pct := ratio * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// UncappedProgressPercentage returns progress without the display cap.
// Milestone detection uses this value.
func (g *SavingsGoal) UncappedProgressPercentage() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	ratio, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	return ratio * 100
}

// RemainingAmount returns the amount still to be saved, floored at zero.
func (g *SavingsGoal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// DaysRemaining returns whole days until the target date, floored at zero.
func (g *SavingsGoal) DaysRemaining(now time.Time) int {
	diff := g.TargetDate.Sub(now)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// AddContribution records a contribution and updates the current amount
// and completion status.
func (g *SavingsGoal) AddContribution(amount decimal.Decimal, note string) {
	g.Contributions = append(g.Contributions, Contribution{
		Amount: amount,
		Date:   time.Now().UTC(),
		Note:   note,
	})
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.RefreshCompletion()
}

// RefreshCompletion re-derives IsCompleted from current vs target amount.
func (g *SavingsGoal) RefreshCompletion() {
	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// nextReminderAfter computes the first reminder time for a frequency,
// or nil when reminders are disabled.
func nextReminderAfter(now time.Time, freq ReminderFrequency) *time.Time {
	var next time.Time
	switch freq {
	case ReminderDaily:
		next = now.Add(24 * time.Hour)
	case ReminderWeekly:
		next = now.Add(7 * 24 * time.Hour)
	case ReminderMonthly:
		next = now.AddDate(0, 1, 0)
	default:
		return nil
	}
	return &next
}

// IsValidGoalCategory reports whether the category is one of the fixed set.
func IsValidGoalCategory(category GoalCategory) bool {
	switch category {
	case GoalCategoryEmergencyFund, GoalCategoryVacation, GoalCategoryHomePurchase,
		GoalCategoryVehicle, GoalCategoryEducation, GoalCategoryWedding,
		GoalCategoryRetirement, GoalCategoryInvestment, GoalCategoryDebtPayoff,
		GoalCategoryOther:
		return true
	}
	return false
}

// IsValidGoalPriority reports whether the priority is one of the fixed set.
func IsValidGoalPriority(priority GoalPriority) bool {
	switch priority {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh, GoalPriorityCritical:
		return true
	}
	return false
}

// IsValidReminderFrequency reports whether the frequency is one of the fixed set.
func IsValidReminderFrequency(freq ReminderFrequency) bool {
	switch freq {
	case ReminderDaily, ReminderWeekly, ReminderMonthly, ReminderNever:
		return true
	}
	return false
}

// SavingsGoalStats represents aggregate statistics across a user's goals.
type SavingsGoalStats struct {
	TotalGoals           int
	CompletedGoals       int
	ActiveGoals          int
	TotalTargetAmount    decimal.Decimal
	TotalCurrentAmount   decimal.Decimal
	TotalRemainingAmount decimal.Decimal
	OverallProgress      float64
}
