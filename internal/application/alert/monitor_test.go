package alert

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	budgetuc "github.com/smart-finance/backend/internal/application/usecase/budget"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// drain executes queued dispatcher tasks synchronously.
func drain(d *Dispatcher) {
	for {
		select {
		case task := <-d.tasks:
			task(context.Background())
		default:
			return
		}
	}
}

type memNotificationRepo struct {
	adapter.NotificationRepository
	created        []*entity.Notification
	milestones     map[string]bool
	recentReminder bool
}

func (r *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *memNotificationRepo) ExistsGoalMilestone(_ context.Context, _, goalID uuid.UUID, milestone int) (bool, error) {
	if r.milestones == nil {
		return false, nil
	}
	return r.milestones[milestoneKey(goalID, milestone)], nil
}

func (r *memNotificationRepo) ExistsRecentDeadlineReminder(_ context.Context, _, _ uuid.UUID, _ time.Time) (bool, error) {
	return r.recentReminder, nil
}

func milestoneKey(goalID uuid.UUID, milestone int) string {
	return fmt.Sprintf("%s:%d", goalID, milestone)
}

type memUserRepo struct {
	adapter.UserRepository
	user *entity.User
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.user, nil
}

type memEmailService struct {
	budgetAlerts  []adapter.QueueBudgetAlertInput
	goalAchieved  []adapter.QueueGoalAchievedInput
	welcomeQueued int
}

func (s *memEmailService) QueueWelcomeEmail(_ context.Context, _, _ string) error {
	s.welcomeQueued++
	return nil
}

func (s *memEmailService) QueueBudgetAlertEmail(_ context.Context, input adapter.QueueBudgetAlertInput) error {
	s.budgetAlerts = append(s.budgetAlerts, input)
	return nil
}

func (s *memEmailService) QueueGoalAchievedEmail(_ context.Context, input adapter.QueueGoalAchievedInput) error {
	s.goalAchieved = append(s.goalAchieved, input)
	return nil
}

func (s *memEmailService) QueueMonthlyReportEmail(_ context.Context, _ adapter.QueueMonthlyReportInput) error {
	return nil
}

type memBudgetRepo struct {
	adapter.BudgetRepository
	budgets []*entity.Budget
}

func (r *memBudgetRepo) FindActiveAt(_ context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Budget, error) {
	return r.budgets, nil
}

func (r *memBudgetRepo) Update(_ context.Context, _ *entity.Budget) error {
	return nil
}

type memTransactionRepo struct {
	adapter.TransactionRepository
	expenses []*entity.Transaction
}

func (r *memTransactionRepo) FindExpensesInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*entity.Transaction, error) {
	return r.expenses, nil
}

type memGoalRepo struct {
	adapter.SavingsGoalRepository
	goals []*entity.SavingsGoal
}

func (r *memGoalRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.SavingsGoal, error) {
	return r.goals, nil
}

func newTestMonitor(
	notifications *memNotificationRepo,
	budgets *memBudgetRepo,
	transactions *memTransactionRepo,
	goals *memGoalRepo,
	users *memUserRepo,
	emails *memEmailService,
) (*Monitor, *Dispatcher) {
	d := NewDispatcher(32, testLogger())
	m := NewMonitor(d, notifications, budgets, transactions, goals, users, emails, testLogger())
	return m, d
}

func testUser() *entity.User {
	return entity.NewUser("Ada", "ada@example.com", "hash")
}

func TestMonitor_BudgetThresholdCrossed(t *testing.T) {
	notifications := &memNotificationRepo{}
	users := &memUserRepo{user: testUser()}
	emails := &memEmailService{}
	m, d := newTestMonitor(notifications, &memBudgetRepo{}, &memTransactionRepo{}, &memGoalRepo{}, users, emails)

	userID := uuid.New()
	b := &entity.Budget{ID: uuid.New(), UserID: userID, Name: "March", AlertThreshold: 80}

	t.Run("below 100 creates medium notification, no email", func(t *testing.T) {
		m.BudgetThresholdCrossed(userID, b, []budgetuc.Crossing{{
			CategoryName: "Groceries",
			Usage:        85,
			Threshold:    80,
			SpentAmount:  decimal.NewFromInt(850),
			BudgetAmount: decimal.NewFromInt(1000),
		}})
		drain(d)

		if len(notifications.created) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notifications.created))
		}
		n := notifications.created[0]
		if n.Type != entity.NotificationBudgetAlert {
			t.Errorf("expected budget-alert type, got %q", n.Type)
		}
		if n.Priority != entity.PriorityMedium {
			t.Errorf("expected medium priority, got %q", n.Priority)
		}
		if len(emails.budgetAlerts) != 0 {
			t.Errorf("expected no email below 100%%, got %d", len(emails.budgetAlerts))
		}
	})

	t.Run("at or past 100 is urgent and queues email", func(t *testing.T) {
		notifications.created = nil
		m.BudgetThresholdCrossed(userID, b, []budgetuc.Crossing{{
			CategoryName: "Groceries",
			Usage:        110,
			Threshold:    80,
			SpentAmount:  decimal.NewFromInt(1100),
			BudgetAmount: decimal.NewFromInt(1000),
		}})
		drain(d)

		if len(notifications.created) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notifications.created))
		}
		if notifications.created[0].Priority != entity.PriorityUrgent {
			t.Errorf("expected urgent priority, got %q", notifications.created[0].Priority)
		}
		if len(emails.budgetAlerts) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(emails.budgetAlerts))
		}
		if emails.budgetAlerts[0].UserEmail != "ada@example.com" {
			t.Errorf("expected email addressed to user, got %q", emails.budgetAlerts[0].UserEmail)
		}
	})
}

func TestMonitor_GoalMilestones(t *testing.T) {
	userID := uuid.New()
	goal := entity.NewSavingsGoal(
		userID, "Emergency Fund", "",
		decimal.NewFromInt(1000),
		time.Now().UTC().AddDate(1, 0, 0),
		entity.GoalCategoryEmergencyFund,
		entity.GoalPriorityHigh,
		decimal.Zero, false, entity.ReminderNever,
	)

	t.Run("crossing milestones creates achievements", func(t *testing.T) {
		notifications := &memNotificationRepo{}
		emails := &memEmailService{}
		m, d := newTestMonitor(notifications, &memBudgetRepo{}, &memTransactionRepo{}, &memGoalRepo{}, &memUserRepo{user: testUser()}, emails)

		goal.CurrentAmount = decimal.NewFromInt(600) // 60%, from 20%
		m.GoalContributionRecorded(userID, goal, 20)
		drain(d)

		if len(notifications.created) != 2 {
			t.Fatalf("expected notifications for 25 and 50, got %d", len(notifications.created))
		}
		for _, n := range notifications.created {
			if n.Type != entity.NotificationAchievement {
				t.Errorf("expected achievement type, got %q", n.Type)
			}
		}
		if len(emails.goalAchieved) != 0 {
			t.Errorf("expected no achievement email before 100%%, got %d", len(emails.goalAchieved))
		}
	})

	t.Run("existing milestone notification dedupes", func(t *testing.T) {
		notifications := &memNotificationRepo{milestones: map[string]bool{
			milestoneKey(goal.ID, 25): true,
		}}
		m, d := newTestMonitor(notifications, &memBudgetRepo{}, &memTransactionRepo{}, &memGoalRepo{}, &memUserRepo{user: testUser()}, &memEmailService{})

		goal.CurrentAmount = decimal.NewFromInt(300) // 30%, from 10%
		m.GoalContributionRecorded(userID, goal, 10)
		drain(d)

		if len(notifications.created) != 0 {
			t.Fatalf("expected deduped milestone to stay silent, got %d notifications", len(notifications.created))
		}
	})

	t.Run("completion queues achievement email", func(t *testing.T) {
		notifications := &memNotificationRepo{}
		emails := &memEmailService{}
		m, d := newTestMonitor(notifications, &memBudgetRepo{}, &memTransactionRepo{}, &memGoalRepo{}, &memUserRepo{user: testUser()}, emails)

		goal.CurrentAmount = decimal.NewFromInt(1000) // 100%, from 90%
		m.GoalContributionRecorded(userID, goal, 90)
		drain(d)

		if len(notifications.created) != 1 {
			t.Fatalf("expected one 100%% notification, got %d", len(notifications.created))
		}
		if notifications.created[0].Priority != entity.PriorityHigh {
			t.Errorf("expected high priority for completion, got %q", notifications.created[0].Priority)
		}
		if len(emails.goalAchieved) != 1 {
			t.Fatalf("expected one achievement email, got %d", len(emails.goalAchieved))
		}
	})
}

func TestMonitor_LargeTransactions(t *testing.T) {
	tests := []struct {
		name   string
		txType entity.TransactionType
		amount int64
		want   int
	}{
		{"large expense", entity.TransactionTypeExpense, 10000, 1},
		{"ordinary expense", entity.TransactionTypeExpense, 9999, 0},
		{"large income", entity.TransactionTypeIncome, 50000, 1},
		{"ordinary income", entity.TransactionTypeIncome, 49999, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifications := &memNotificationRepo{}
			m, d := newTestMonitor(notifications, &memBudgetRepo{}, &memTransactionRepo{}, &memGoalRepo{}, &memUserRepo{user: testUser()}, &memEmailService{})

			userID := uuid.New()
			tx := entity.NewTransaction(
				userID, tt.txType, decimal.NewFromInt(tt.amount),
				"other-expense", "", time.Now().UTC(), entity.PaymentMethodCard,
			)
			m.TransactionRecorded(userID, tx)
			drain(d)

			var large int
			for _, n := range notifications.created {
				if n.Type == entity.NotificationTransaction {
					large++
				}
			}
			if large != tt.want {
				t.Errorf("expected %d large-transaction notifications, got %d", tt.want, large)
			}
		})
	}
}

func TestMonitor_TransactionTriggersBudgetResync(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	b := entity.NewBudget(
		userID, "March", entity.BudgetPeriodMonthly,
		start, start.Add(30*24*time.Hour),
		[]entity.BudgetCategory{
			{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
		},
		entity.DefaultAlertThreshold,
		entity.DefaultBudgetNotificationSettings(),
	)

	notifications := &memNotificationRepo{}
	budgets := &memBudgetRepo{budgets: []*entity.Budget{b}}
	transactions := &memTransactionRepo{expenses: []*entity.Transaction{
		entity.NewTransaction(userID, entity.TransactionTypeExpense,
			decimal.NewFromInt(850), "groceries", "", start.Add(24*time.Hour), entity.PaymentMethodCard),
	}}
	m, d := newTestMonitor(notifications, budgets, transactions, &memGoalRepo{}, &memUserRepo{user: testUser()}, &memEmailService{})

	m.TransactionMutated(userID, transactions.expenses[0])
	drain(d)

	if !b.TotalSpent.Equal(decimal.NewFromInt(850)) {
		t.Errorf("expected budget resynced to 850 spent, got %s", b.TotalSpent)
	}
	// 85% crossed the default 80 threshold during the resync.
	var alerts int
	for _, n := range notifications.created {
		if n.Type == entity.NotificationBudgetAlert {
			alerts++
		}
	}
	if alerts != 2 { // category and overall
		t.Errorf("expected 2 threshold notifications, got %d", alerts)
	}
}

func TestMonitor_GoalDeadlineReminders(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	makeGoal := func(daysOut int, progress int64) *entity.SavingsGoal {
		g := entity.NewSavingsGoal(
			userID, "Trip", "",
			decimal.NewFromInt(100),
			now.AddDate(0, 0, daysOut),
			entity.GoalCategoryVacation,
			entity.GoalPriorityMedium,
			decimal.Zero, false, entity.ReminderNever,
		)
		g.CurrentAmount = decimal.NewFromInt(progress)
		g.RefreshCompletion()
		return g
	}

	tests := []struct {
		name          string
		goal          *entity.SavingsGoal
		recentExists  bool
		wantReminders int
	}{
		{"due soon and behind", makeGoal(10, 40), false, 1},
		{"due soon but nearly funded", makeGoal(10, 95), false, 0},
		{"far away", makeGoal(120, 40), false, 0},
		{"already reminded this week", makeGoal(10, 40), true, 0},
		{"completed", makeGoal(10, 100), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifications := &memNotificationRepo{recentReminder: tt.recentExists}
			goals := &memGoalRepo{goals: []*entity.SavingsGoal{tt.goal}}
			m, _ := newTestMonitor(notifications, &memBudgetRepo{}, &memTransactionRepo{}, goals, &memUserRepo{user: testUser()}, &memEmailService{})
			m.WithClock(func() time.Time { return now })

			m.goalDeadlineReminders(context.Background(), userID)

			if len(notifications.created) != tt.wantReminders {
				t.Errorf("expected %d reminders, got %d", tt.wantReminders, len(notifications.created))
			}
		})
	}
}
