package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

func storeTransaction(t *testing.T, repo adapter.TransactionRepository, userID uuid.UUID, txType entity.TransactionType, amount int64, category string, date time.Time) *entity.Transaction {
	t.Helper()

	tx := entity.NewTransaction(
		userID,
		txType,
		decimal.NewFromInt(amount),
		category,
		"",
		date,
		entity.PaymentMethodOther,
	)
	if err := repo.Create(context.Background(), tx); err != nil {
		t.Fatalf("failed to store transaction: %v", err)
	}
	return tx
}

func TestTransactionRepositoryFindByUserFilters(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 120, "food", base)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 60, "transport", base.AddDate(0, 0, 1))
	storeTransaction(t, repo, userID, entity.TransactionTypeIncome, 5000, "salary", base.AddDate(0, 0, 2))
	storeTransaction(t, repo, uuid.New(), entity.TransactionTypeExpense, 999, "food", base)

	expense := entity.TransactionTypeExpense
	result, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{
		Type:  &expense,
		Page:  1,
		Limit: 20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("expected 2 expenses, got %d", result.Total)
	}

	category := "food"
	result, err = repo.FindByUser(ctx, userID, adapter.TransactionFilter{
		Category: &category,
		Page:     1,
		Limit:    20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("expected 1 food transaction, got %d", result.Total)
	}
	if len(result.Transactions) != 1 || result.Transactions[0].Category != "food" {
		t.Errorf("expected the food transaction, got %+v", result.Transactions)
	}
}

func TestTransactionRepositoryPagination(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		storeTransaction(t, repo, userID, entity.TransactionTypeExpense, int64(10+i), "food", base.AddDate(0, 0, i))
	}

	result, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 5 {
		t.Errorf("expected total 5, got %d", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", result.TotalPages)
	}
	if len(result.Transactions) != 2 {
		t.Fatalf("expected 2 transactions on page 2, got %d", len(result.Transactions))
	}
	// Newest first, so page 2 holds days 3 and 2.
	if !result.Transactions[0].Amount.Equal(decimal.NewFromInt(12)) {
		t.Errorf("expected amount 12 first on page 2, got %s", result.Transactions[0].Amount)
	}
}

func TestTransactionRepositoryFindExpensesInRangeInclusive(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 10, "food", start)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 20, "food", end)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 30, "food", start.Add(-time.Second))
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 40, "food", end.Add(time.Second))
	storeTransaction(t, repo, userID, entity.TransactionTypeIncome, 50, "salary", start.AddDate(0, 0, 10))

	expenses, err := repo.FindExpensesInRange(ctx, userID, start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses inside the window, got %d", len(expenses))
	}
	total := decimal.Zero
	for _, tx := range expenses {
		total = total.Add(tx.Amount)
	}
	if !total.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected window total 30, got %s", total)
	}
}

func TestTransactionRepositoryGetTotals(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	storeTransaction(t, repo, userID, entity.TransactionTypeIncome, 5000, "salary", base)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 1200, "food", base)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 300, "transport", base.AddDate(0, -2, 0))

	totals, err := repo.GetTotals(ctx, userID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.IncomeTotal.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected income 5000, got %s", totals.IncomeTotal)
	}
	if !totals.ExpenseTotal.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("expected expenses 1500, got %s", totals.ExpenseTotal)
	}
	if !totals.NetTotal.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected net 3500, got %s", totals.NetTotal)
	}

	since := base.AddDate(0, -1, 0)
	totals, err = repo.GetTotals(ctx, userID, &since)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !totals.ExpenseTotal.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected windowed expenses 1200, got %s", totals.ExpenseTotal)
	}
}

func TestTransactionRepositoryGetCategorySpending(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 100, "transport", base)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 700, "food", base)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 500, "food", base.AddDate(0, 0, 1))

	spending, err := repo.GetCategorySpending(ctx, userID, entity.TransactionTypeExpense, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spending) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(spending))
	}
	if spending[0].Category != "food" {
		t.Errorf("expected food first, got %q", spending[0].Category)
	}
	if !spending[0].Total.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected food total 1200, got %s", spending[0].Total)
	}
	if spending[0].TransactionCount != 2 {
		t.Errorf("expected 2 food transactions, got %d", spending[0].TransactionCount)
	}
}

func TestTransactionRepositoryGetDailySpending(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	day1 := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 12, 18, 0, 0, 0, time.UTC)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 50, "food", day1)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 25, "transport", day1.Add(6*time.Hour))
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 40, "food", day2)

	spending, err := repo.GetDailySpending(ctx, userID, day1.AddDate(0, 0, -1), day2.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(spending) != 2 {
		t.Fatalf("expected 2 days, got %d", len(spending))
	}
	if !spending[0].Total.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected 75 on the first day, got %s", spending[0].Total)
	}
	if spending[0].TransactionCount != 2 {
		t.Errorf("expected 2 transactions on the first day, got %d", spending[0].TransactionCount)
	}
	if !spending[1].Date.After(spending[0].Date) {
		t.Error("expected days ordered ascending")
	}
}

func TestTransactionRepositoryGetMonthlyTrends(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	july := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	storeTransaction(t, repo, userID, entity.TransactionTypeIncome, 5000, "salary", july)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 2000, "rent", july)
	storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 800, "food", august)

	trends, err := repo.GetMonthlyTrends(ctx, userID, july.AddDate(0, 0, -9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trends) != 2 {
		t.Fatalf("expected 2 months, got %d", len(trends))
	}
	if trends[0].Month != time.July || trends[1].Month != time.August {
		t.Errorf("expected July then August, got %v then %v", trends[0].Month, trends[1].Month)
	}
	if !trends[0].Income.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected July income 5000, got %s", trends[0].Income)
	}
	if !trends[1].Expenses.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected August expenses 800, got %s", trends[1].Expenses)
	}
}

func TestTransactionRepositoryDeleteScopedToOwner(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	tx := storeTransaction(t, repo, userID, entity.TransactionTypeExpense, 100, "food", time.Now().UTC())

	if err := repo.Delete(ctx, tx.ID, uuid.New()); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound for foreign owner, got %v", err)
	}

	if err := repo.Delete(ctx, tx.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByIDAndUser(ctx, tx.ID, userID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound after delete, got %v", err)
	}
}

func TestTransactionRepositoryFindRecent(t *testing.T) {
	repo := NewTransactionRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		storeTransaction(t, repo, userID, entity.TransactionTypeExpense, int64(i+1), "food", base.AddDate(0, 0, i))
	}

	recent, err := repo.FindRecent(ctx, userID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 transactions, got %d", len(recent))
	}
	if !recent[0].Amount.Equal(decimal.NewFromInt(8)) {
		t.Errorf("expected newest transaction first, got amount %s", recent[0].Amount)
	}
}
