package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

func newStoredBudget(t *testing.T, repo func(ctx context.Context, b *entity.Budget) error, userID uuid.UUID, start, end time.Time) *entity.Budget {
	t.Helper()

	budget := entity.NewBudget(
		userID,
		"Monthly essentials",
		entity.BudgetPeriodMonthly,
		start, end,
		[]entity.BudgetCategory{
			{Name: "Groceries", BudgetAmount: decimal.NewFromInt(600), SpentAmount: decimal.Zero, IsActive: true},
			{Name: "Transportation", BudgetAmount: decimal.NewFromInt(200), SpentAmount: decimal.Zero, IsActive: true},
		},
		entity.DefaultAlertThreshold,
		entity.DefaultBudgetNotificationSettings(),
	)
	if err := repo(context.Background(), budget); err != nil {
		t.Fatalf("failed to store budget: %v", err)
	}
	return budget
}

func TestBudgetRepositoryRoundTrip(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	budget := newStoredBudget(t, repo.Create, userID, start, end)

	found, err := repo.FindByIDAndUser(ctx, budget.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != budget.Name {
		t.Errorf("expected name %q, got %q", budget.Name, found.Name)
	}
	if len(found.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(found.Categories))
	}
	if !found.Categories[0].BudgetAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected first allocation 600, got %s", found.Categories[0].BudgetAmount)
	}
	if !found.TotalBudget.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected total budget 800, got %s", found.TotalBudget)
	}
	if !found.Notifications.Enabled {
		t.Error("expected notifications to survive the round trip")
	}
}

func TestBudgetRepositoryScopesToOwner(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	budget := newStoredBudget(t, repo.Create, userID, start, end)

	_, err := repo.FindByIDAndUser(ctx, budget.ID, uuid.New())
	if !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound for foreign owner, got %v", err)
	}

	if err := repo.Delete(ctx, budget.ID, uuid.New()); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound deleting as foreign owner, got %v", err)
	}
}

func TestBudgetRepositoryUpdatePersistsSpentState(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	budget := newStoredBudget(t, repo.Create, userID, start, start.AddDate(0, 1, 0))

	budget.Categories[0].SpentAmount = decimal.NewFromInt(450)
	budget.RecalculateTotalSpent()
	if err := repo.Update(ctx, budget); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByIDAndUser(ctx, budget.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Categories[0].SpentAmount.Equal(decimal.NewFromInt(450)) {
		t.Errorf("expected spent 450, got %s", found.Categories[0].SpentAmount)
	}
	if !found.TotalSpent.Equal(decimal.NewFromInt(450)) {
		t.Errorf("expected total spent 450, got %s", found.TotalSpent)
	}
}

func TestBudgetRepositoryFindActiveAt(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	august := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	current := newStoredBudget(t, repo.Create, userID, august, august.AddDate(0, 1, 0))
	newStoredBudget(t, repo.Create, userID, august.AddDate(0, -2, 0), august.AddDate(0, -1, 0))

	inactive := newStoredBudget(t, repo.Create, userID, august, august.AddDate(0, 1, 0))
	inactive.IsActive = false
	if err := repo.Update(ctx, inactive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active, err := repo.FindActiveAt(ctx, userID, august.AddDate(0, 0, 14))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active budget, got %d", len(active))
	}
	if active[0].ID != current.ID {
		t.Errorf("expected budget %s, got %s", current.ID, active[0].ID)
	}
}

func TestBudgetRepositorySoftDelete(t *testing.T) {
	repo := NewBudgetRepository(newTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	budget := newStoredBudget(t, repo.Create, userID, start, start.AddDate(0, 1, 0))

	if err := repo.Delete(ctx, budget.ID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByIDAndUser(ctx, budget.ID, userID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound after delete, got %v", err)
	}

	budgets, err := repo.FindByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(budgets) != 0 {
		t.Errorf("expected deleted budget excluded from listing, got %d", len(budgets))
	}
}
