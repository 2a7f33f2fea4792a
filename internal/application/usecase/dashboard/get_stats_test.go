package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

type stubTransactionRepo struct {
	adapter.TransactionRepository
	totals      *entity.TransactionTotals
	recent      []*entity.Transaction
	totalsSince *time.Time
	trendsSince time.Time
}

func (r *stubTransactionRepo) GetTotals(_ context.Context, _ uuid.UUID, since *time.Time) (*entity.TransactionTotals, error) {
	r.totalsSince = since
	return r.totals, nil
}

func (r *stubTransactionRepo) FindRecent(_ context.Context, _ uuid.UUID, limit int) ([]*entity.Transaction, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *stubTransactionRepo) GetMonthlyTrends(_ context.Context, _ uuid.UUID, since time.Time) ([]entity.MonthlyTrend, error) {
	r.trendsSince = since
	return nil, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &stubTransactionRepo{
		totals: &entity.TransactionTotals{
			IncomeTotal:  decimal.NewFromInt(9000),
			ExpenseTotal: decimal.NewFromInt(4000),
			NetTotal:     decimal.NewFromInt(5000),
		},
	}
	for i := 0; i < 8; i++ {
		repo.recent = append(repo.recent, &entity.Transaction{ID: uuid.New()})
	}

	uc := NewGetStatsUseCase(repo).WithClock(fixedClock(now))

	t.Run("default window", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), GetStatsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.WindowDays != DefaultStatsWindowDays {
			t.Errorf("expected default window %d, got %d", DefaultStatsWindowDays, out.WindowDays)
		}
		wantSince := now.AddDate(0, 0, -DefaultStatsWindowDays)
		if repo.totalsSince == nil || !repo.totalsSince.Equal(wantSince) {
			t.Errorf("expected totals since %v, got %v", wantSince, repo.totalsSince)
		}
		if len(out.RecentTransactions) != 5 {
			t.Errorf("expected 5 recent transactions, got %d", len(out.RecentTransactions))
		}
		if !out.Totals.NetTotal.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected net total 5000, got %s", out.Totals.NetTotal)
		}
	})

	t.Run("custom window", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetStatsInput{UserID: uuid.New(), WindowDays: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantSince := now.AddDate(0, 0, -7)
		if repo.totalsSince == nil || !repo.totalsSince.Equal(wantSince) {
			t.Errorf("expected totals since %v, got %v", wantSince, repo.totalsSince)
		}
	})
}

func TestGetTrends_DefaultMonths(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &stubTransactionRepo{}

	uc := NewGetTrendsUseCase(repo).WithClock(fixedClock(now))
	out, err := uc.Execute(context.Background(), GetTrendsInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Months != DefaultTrendMonths {
		t.Errorf("expected default %d months, got %d", DefaultTrendMonths, out.Months)
	}
	wantSince := now.AddDate(0, -DefaultTrendMonths, 0)
	if !repo.trendsSince.Equal(wantSince) {
		t.Errorf("expected trends since %v, got %v", wantSince, repo.trendsSince)
	}
}
