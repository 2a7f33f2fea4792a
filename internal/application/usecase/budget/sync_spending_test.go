package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	domainerror "github.com/smart-finance/backend/internal/domain/error"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// stubBudgetRepo serves a single budget and records updates. Unused interface
// methods panic via the embedded nil interface.
type stubBudgetRepo struct {
	adapter.BudgetRepository
	budget  *entity.Budget
	updated int
}

func (r *stubBudgetRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	if r.budget == nil || r.budget.ID != id || r.budget.UserID != userID {
		return nil, domainerror.ErrBudgetNotFound
	}
	return r.budget, nil
}

func (r *stubBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	r.budget = budget
	r.updated++
	return nil
}

type stubTransactionRepo struct {
	adapter.TransactionRepository
	expenses []*entity.Transaction
}

func (r *stubTransactionRepo) FindExpensesInRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.expenses {
		if tx.UserID != userID || tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

type recordingAlerter struct {
	calls     int
	crossings []Crossing
}

func (a *recordingAlerter) BudgetThresholdCrossed(_ uuid.UUID, _ *entity.Budget, crossings []Crossing) {
	a.calls++
	a.crossings = append(a.crossings, crossings...)
}

func expense(userID uuid.UUID, category string, amount int64, date time.Time) *entity.Transaction {
	return entity.NewTransaction(
		userID,
		entity.TransactionTypeExpense,
		decimal.NewFromInt(amount),
		category,
		"",
		date,
		entity.PaymentMethodCard,
	)
}

func syncFixture(categories []entity.BudgetCategory) (*entity.Budget, *stubBudgetRepo, *stubTransactionRepo) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	b := entity.NewBudget(
		userID,
		"March",
		entity.BudgetPeriodMonthly,
		start,
		end,
		categories,
		entity.DefaultAlertThreshold,
		entity.DefaultBudgetNotificationSettings(),
	)
	return b, &stubBudgetRepo{budget: b}, &stubTransactionRepo{}
}

func TestSyncSpending_ApportionsByCategory(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
		{Name: "Travel", BudgetAmount: decimal.NewFromInt(500), IsActive: true},
	})
	mid := b.StartDate.Add(5 * 24 * time.Hour)
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "Groceries", 200, mid),
		expense(b.UserID, "groceries", 50, mid), // case-insensitive match
		expense(b.UserID, "Travel", 100, mid),
	}

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	out, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.Budget.FindCategory("Groceries").SpentAmount; !got.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected Groceries spent 250, got %s", got)
	}
	if got := out.Budget.FindCategory("Travel").SpentAmount; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected Travel spent 100, got %s", got)
	}
	if !out.Budget.TotalSpent.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected total spent 350, got %s", out.Budget.TotalSpent)
	}
	if budgetRepo.updated != 1 {
		t.Errorf("expected a single persist, got %d", budgetRepo.updated)
	}
}

func TestSyncSpending_UnmatchedFallsBackToOther(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
		{Name: "Other", BudgetAmount: decimal.NewFromInt(300), IsActive: true},
	})
	mid := b.StartDate.Add(24 * time.Hour)
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "subscriptions", 75, mid),
	}

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	out, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.Budget.FallbackCategory().SpentAmount; !got.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected Other to absorb 75, got %s", got)
	}
}

func TestSyncSpending_UnmatchedWithoutOtherIsDropped(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
	})
	mid := b.StartDate.Add(24 * time.Hour)
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "subscriptions", 75, mid),
		expense(b.UserID, "Groceries", 40, mid),
	}

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	out, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The unmatched expense vanishes from this budget's accounting without
	// failing the sync.
	if !out.Budget.TotalSpent.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected total spent 40, got %s", out.Budget.TotalSpent)
	}
}

func TestSyncSpending_WindowBoundariesAreInclusive(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
	})
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "Groceries", 10, b.StartDate),
		expense(b.UserID, "Groceries", 20, b.EndDate),
		expense(b.UserID, "Groceries", 500, b.StartDate.Add(-time.Second)),
		expense(b.UserID, "Groceries", 500, b.EndDate.Add(time.Second)),
	}

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	out, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Budget.TotalSpent.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected only boundary transactions counted (30), got %s", out.Budget.TotalSpent)
	}
}

func TestSyncSpending_IsIdempotent(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
	})
	mid := b.StartDate.Add(24 * time.Hour)
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "Groceries", 120, mid),
	}

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	input := SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID}

	for i := 0; i < 3; i++ {
		out, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("sync %d failed: %v", i+1, err)
		}
		if !out.Budget.TotalSpent.Equal(decimal.NewFromInt(120)) {
			t.Fatalf("sync %d: expected total spent 120, got %s", i+1, out.Budget.TotalSpent)
		}
	}
}

func TestSyncSpending_EmptyCategoryList(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture(nil)
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "Groceries", 120, b.StartDate.Add(24*time.Hour)),
	}

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	out, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Budget.TotalSpent.IsZero() {
		t.Errorf("expected zero spent with no categories, got %s", out.Budget.TotalSpent)
	}
}

func TestSyncSpending_EmitsCrossingAlert(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
	})
	mid := b.StartDate.Add(24 * time.Hour)
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "Groceries", 700, mid),
	}

	alerter := &recordingAlerter{}
	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, alerter)
	input := SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID}

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}
	if alerter.calls != 0 {
		t.Fatalf("expected no alert at 70%% usage, got %d calls", alerter.calls)
	}

	txRepo.expenses = append(txRepo.expenses, expense(b.UserID, "Groceries", 150, mid))
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	if alerter.calls != 1 {
		t.Fatalf("expected exactly one alert call, got %d", alerter.calls)
	}
	// Category crossing plus the overall crossing (single-category budget).
	if len(alerter.crossings) != 2 {
		t.Fatalf("expected 2 crossings, got %d", len(alerter.crossings))
	}

	// A third sync with no change must not re-alert.
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("third sync failed: %v", err)
	}
	if alerter.calls != 1 {
		t.Fatalf("expected no further alerts, got %d calls", alerter.calls)
	}
}

func TestSyncSpending_DisabledNotificationsSuppressAlerts(t *testing.T) {
	b, budgetRepo, txRepo := syncFixture([]entity.BudgetCategory{
		{Name: "Groceries", BudgetAmount: decimal.NewFromInt(1000), IsActive: true},
	})
	b.Notifications.ThresholdAlert = false
	txRepo.expenses = []*entity.Transaction{
		expense(b.UserID, "Groceries", 900, b.StartDate.Add(24*time.Hour)),
	}

	alerter := &recordingAlerter{}
	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, alerter)
	if _, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: b.UserID, BudgetID: b.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if alerter.calls != 0 {
		t.Fatalf("expected alerts suppressed, got %d calls", alerter.calls)
	}
}

func TestSyncSpending_UnknownBudget(t *testing.T) {
	_, budgetRepo, txRepo := syncFixture(nil)

	uc := NewSyncSpendingUseCase(budgetRepo, txRepo, nil)
	_, err := uc.Execute(context.Background(), SyncSpendingInput{UserID: uuid.New(), BudgetID: uuid.New()})
	if err == nil {
		t.Fatal("expected an error for an unknown budget")
	}
}
