package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	budgetuc "github.com/smart-finance/backend/internal/application/usecase/budget"
	"github.com/smart-finance/backend/internal/application/usecase/savingsgoal"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// Large-transaction thresholds. Amounts at or above these produce an
// informational notification.
const (
	LargeExpenseThreshold = 10000
	LargeIncomeThreshold  = 50000
)

// Goal deadline reminder bounds: goals due within DeadlineWindowDays whose
// progress is still under DeadlineProgressLimit get a reminder, at most once
// per DeadlineLookback.
const (
	DeadlineWindowDays    = 30
	DeadlineProgressLimit = 90.0
	DeadlineLookback      = 7 * 24 * time.Hour
)

// Monitor produces in-app notifications and queued emails in response to
// budget, goal and transaction activity. All entry points enqueue work on the
// dispatcher and return immediately; failures inside tasks are logged only.
type Monitor struct {
	dispatcher       *Dispatcher
	notificationRepo adapter.NotificationRepository
	budgetRepo       adapter.BudgetRepository
	transactionRepo  adapter.TransactionRepository
	goalRepo         adapter.SavingsGoalRepository
	userRepo         adapter.UserRepository
	emailService     adapter.EmailService
	logger           *slog.Logger
	now              func() time.Time
}

// NewMonitor creates a new Monitor instance.
func NewMonitor(
	dispatcher *Dispatcher,
	notificationRepo adapter.NotificationRepository,
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	goalRepo adapter.SavingsGoalRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	logger *slog.Logger,
) *Monitor {
	return &Monitor{
		dispatcher:       dispatcher,
		notificationRepo: notificationRepo,
		budgetRepo:       budgetRepo,
		transactionRepo:  transactionRepo,
		goalRepo:         goalRepo,
		userRepo:         userRepo,
		emailService:     emailService,
		logger:           logger,
		now:              time.Now,
	}
}

// WithClock overrides the monitor's clock. Intended for tests.
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

// BudgetThresholdCrossed implements budgetuc.ThresholdAlerter. Each crossing
// becomes one budget-alert notification; crossings at or past 100% are urgent
// and additionally queue an alert email.
func (m *Monitor) BudgetThresholdCrossed(userID uuid.UUID, b *entity.Budget, crossings []budgetuc.Crossing) {
	budgetName := b.Name
	m.dispatcher.Submit(func(ctx context.Context) {
		for _, c := range crossings {
			m.emitThresholdNotification(ctx, userID, budgetName, c)
		}
	})
}

func (m *Monitor) emitThresholdNotification(ctx context.Context, userID uuid.UUID, budgetName string, c budgetuc.Crossing) {
	scope := c.CategoryName
	if scope == "" {
		scope = budgetName
	}

	priority := entity.PriorityMedium
	title := "Budget threshold reached"
	message := fmt.Sprintf("%s has used %.0f%% of its budget (%s of %s).",
		scope, c.Usage, c.SpentAmount.StringFixed(2), c.BudgetAmount.StringFixed(2))
	if c.Usage >= 100 {
		priority = entity.PriorityUrgent
		title = "Budget exceeded"
		message = fmt.Sprintf("%s is over budget: %s spent of %s allocated.",
			scope, c.SpentAmount.StringFixed(2), c.BudgetAmount.StringFixed(2))
	}

	n := entity.NewNotification(
		userID,
		title,
		message,
		entity.NotificationBudgetAlert,
		priority,
		map[string]interface{}{
			"budget":    budgetName,
			"category":  c.CategoryName,
			"usage":     c.Usage,
			"threshold": c.Threshold,
		},
		"/budgets",
	)
	if err := m.notificationRepo.Create(ctx, n); err != nil {
		m.logger.Error("failed to store budget alert notification", "error", err, "user_id", userID)
		return
	}

	if c.Usage < 100 {
		return
	}

	user, err := m.userRepo.FindByID(ctx, userID)
	if err != nil {
		m.logger.Error("failed to load user for budget alert email", "error", err, "user_id", userID)
		return
	}
	err = m.emailService.QueueBudgetAlertEmail(ctx, adapter.QueueBudgetAlertInput{
		UserEmail:    user.Email,
		UserName:     user.Name,
		CategoryName: scope,
		SpentAmount:  c.SpentAmount.StringFixed(2),
		BudgetAmount: c.BudgetAmount.StringFixed(2),
		Percentage:   int(c.Usage),
	})
	if err != nil {
		m.logger.Error("failed to queue budget alert email", "error", err, "user_id", userID)
	}
}

// GoalContributionRecorded implements savingsgoal.ProgressNotifier. Milestone
// notifications are deduped per goal and milestone; reaching 100% also queues
// the achievement email.
func (m *Monitor) GoalContributionRecorded(userID uuid.UUID, goal *entity.SavingsGoal, beforeProgress float64) {
	goalID := goal.ID
	goalTitle := goal.Title
	targetAmount := goal.TargetAmount
	crossed := savingsgoal.MilestonesCrossed(beforeProgress, goal.UncappedProgressPercentage())
	if len(crossed) == 0 {
		return
	}

	m.dispatcher.Submit(func(ctx context.Context) {
		for _, milestone := range crossed {
			exists, err := m.notificationRepo.ExistsGoalMilestone(ctx, userID, goalID, milestone)
			if err != nil {
				m.logger.Error("failed to check milestone dedupe", "error", err, "goal_id", goalID)
				continue
			}
			if exists {
				continue
			}

			priority := entity.PriorityMedium
			title := fmt.Sprintf("%d%% of the way to %q", milestone, goalTitle)
			message := fmt.Sprintf("You have saved %d%% of your %q goal. Keep going!", milestone, goalTitle)
			if milestone == 100 {
				priority = entity.PriorityHigh
				title = fmt.Sprintf("Goal achieved: %s", goalTitle)
				message = fmt.Sprintf("Congratulations! You reached your %q goal of %s.",
					goalTitle, targetAmount.StringFixed(2))
			}

			n := entity.NewNotification(
				userID,
				title,
				message,
				entity.NotificationAchievement,
				priority,
				map[string]interface{}{
					"goal_id":   goalID.String(),
					"milestone": milestone,
				},
				"/goals",
			)
			if err := m.notificationRepo.Create(ctx, n); err != nil {
				m.logger.Error("failed to store milestone notification", "error", err, "goal_id", goalID)
				continue
			}

			if milestone == 100 {
				m.queueGoalAchievedEmail(ctx, userID, goalTitle, targetAmount.StringFixed(2))
			}
		}
	})
}

func (m *Monitor) queueGoalAchievedEmail(ctx context.Context, userID uuid.UUID, goalTitle, amount string) {
	user, err := m.userRepo.FindByID(ctx, userID)
	if err != nil {
		m.logger.Error("failed to load user for achievement email", "error", err, "user_id", userID)
		return
	}
	err = m.emailService.QueueGoalAchievedEmail(ctx, adapter.QueueGoalAchievedInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		GoalTitle: goalTitle,
		Amount:    amount,
	})
	if err != nil {
		m.logger.Error("failed to queue achievement email", "error", err, "user_id", userID)
	}
}

// TransactionRecorded implements transaction.ActivityObserver for newly
// created transactions: a large-amount notification when warranted, then a
// resync of every active budget covering the transaction date.
func (m *Monitor) TransactionRecorded(userID uuid.UUID, tx *entity.Transaction) {
	snapshot := *tx
	m.dispatcher.Submit(func(ctx context.Context) {
		m.checkLargeTransaction(ctx, userID, &snapshot)
		m.resyncBudgets(ctx, userID, snapshot.Date)
	})
}

// TransactionMutated implements transaction.ActivityObserver for updates and
// deletes: affected budgets are resynced, no large-amount check.
func (m *Monitor) TransactionMutated(userID uuid.UUID, tx *entity.Transaction) {
	date := tx.Date
	m.dispatcher.Submit(func(ctx context.Context) {
		m.resyncBudgets(ctx, userID, date)
	})
}

func (m *Monitor) checkLargeTransaction(ctx context.Context, userID uuid.UUID, tx *entity.Transaction) {
	var title, message string
	switch {
	case tx.Type == entity.TransactionTypeExpense && tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(LargeExpenseThreshold)):
		title = "Large expense recorded"
		message = fmt.Sprintf("An expense of %s was recorded in %s.", tx.Amount.StringFixed(2), tx.Category)
	case tx.Type == entity.TransactionTypeIncome && tx.Amount.GreaterThanOrEqual(decimal.NewFromInt(LargeIncomeThreshold)):
		title = "Large income recorded"
		message = fmt.Sprintf("An income of %s was recorded in %s.", tx.Amount.StringFixed(2), tx.Category)
	default:
		return
	}

	n := entity.NewNotification(
		userID,
		title,
		message,
		entity.NotificationTransaction,
		entity.PriorityMedium,
		map[string]interface{}{
			"transaction_id": tx.ID.String(),
			"amount":         tx.Amount.StringFixed(2),
			"type":           string(tx.Type),
		},
		"/transactions",
	)
	if err := m.notificationRepo.Create(ctx, n); err != nil {
		m.logger.Error("failed to store large transaction notification", "error", err, "user_id", userID)
	}
}

// resyncBudgets recomputes spend for every active budget whose window covers
// the given date, emitting threshold notifications for new crossings.
func (m *Monitor) resyncBudgets(ctx context.Context, userID uuid.UUID, at time.Time) {
	budgets, err := m.budgetRepo.FindActiveAt(ctx, userID, at)
	if err != nil {
		m.logger.Error("failed to find budgets for resync", "error", err, "user_id", userID)
		return
	}

	for _, b := range budgets {
		before := budgetuc.CaptureUsage(b)

		expenses, err := m.transactionRepo.FindExpensesInRange(ctx, userID, b.StartDate, b.EndDate)
		if err != nil {
			m.logger.Error("failed to fetch expenses for resync", "error", err, "budget_id", b.ID)
			continue
		}

		budgetuc.ApportionSpending(b, expenses)

		if err := m.budgetRepo.Update(ctx, b); err != nil {
			m.logger.Error("failed to persist resynced budget", "error", err, "budget_id", b.ID)
			continue
		}

		if !b.Notifications.Enabled || !b.Notifications.ThresholdAlert {
			continue
		}
		for _, c := range budgetuc.DetectCrossings(before, b) {
			m.emitThresholdNotification(ctx, userID, b.Name, c)
		}
	}
}

// RunDailyChecks walks all users and emits daily budget reminders and goal
// deadline reminders. Intended to be driven by a ticker in main.
func (m *Monitor) RunDailyChecks(ctx context.Context) {
	const pageSize = 100

	for page := 1; ; page++ {
		result, err := m.userRepo.List(ctx, "", page, pageSize)
		if err != nil {
			m.logger.Error("failed to list users for daily checks", "error", err)
			return
		}

		for _, user := range result.Users {
			if !user.IsActive {
				continue
			}
			m.dailyBudgetReminder(ctx, user.ID)
			m.goalDeadlineReminders(ctx, user.ID)
		}

		if page >= result.TotalPages {
			return
		}
	}
}

func (m *Monitor) dailyBudgetReminder(ctx context.Context, userID uuid.UUID) {
	budgets, err := m.budgetRepo.FindActiveAt(ctx, userID, m.now().UTC())
	if err != nil {
		m.logger.Error("failed to find budgets for daily reminder", "error", err, "user_id", userID)
		return
	}

	for _, b := range budgets {
		if !b.Notifications.Enabled || !b.Notifications.DailyReminder {
			continue
		}

		n := entity.NewNotification(
			userID,
			fmt.Sprintf("Daily check-in: %s", b.Name),
			fmt.Sprintf("You have %s left of your %s budget (%.0f%% used).",
				b.RemainingBudget().StringFixed(2), b.Name, b.UsagePercentage()),
			entity.NotificationReminder,
			entity.PriorityLow,
			map[string]interface{}{"budget_id": b.ID.String()},
			"/budgets",
		)
		if err := m.notificationRepo.Create(ctx, n); err != nil {
			m.logger.Error("failed to store daily reminder", "error", err, "budget_id", b.ID)
		}
	}
}

func (m *Monitor) goalDeadlineReminders(ctx context.Context, userID uuid.UUID) {
	goals, err := m.goalRepo.FindByUser(ctx, userID)
	if err != nil {
		m.logger.Error("failed to list goals for deadline reminders", "error", err, "user_id", userID)
		return
	}

	now := m.now().UTC()
	for _, g := range goals {
		if g.IsCompleted {
			continue
		}
		days := g.DaysRemaining(now)
		if days > DeadlineWindowDays || g.UncappedProgressPercentage() >= DeadlineProgressLimit {
			continue
		}

		recent, err := m.notificationRepo.ExistsRecentDeadlineReminder(ctx, userID, g.ID, now.Add(-DeadlineLookback))
		if err != nil {
			m.logger.Error("failed to check deadline dedupe", "error", err, "goal_id", g.ID)
			continue
		}
		if recent {
			continue
		}

		n := entity.NewNotification(
			userID,
			fmt.Sprintf("Goal deadline approaching: %s", g.Title),
			fmt.Sprintf("%q is due in %d days and is %.0f%% funded. %s still to save.",
				g.Title, days, g.ProgressPercentage(), g.RemainingAmount().StringFixed(2)),
			entity.NotificationReminder,
			entity.PriorityHigh,
			map[string]interface{}{
				"goal_id":        g.ID.String(),
				"days_remaining": days,
			},
			"/goals",
		)
		if err := m.notificationRepo.Create(ctx, n); err != nil {
			m.logger.Error("failed to store deadline reminder", "error", err, "goal_id", g.ID)
		}
	}
}
