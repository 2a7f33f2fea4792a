// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Type      *entity.TransactionType
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction by id, scoped to its owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves a filtered, paginated list of a user's transactions.
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) (*entity.TransactionListResult, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database (soft delete).
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// FindExpensesInRange retrieves all expense transactions for a user whose
	// date lies within [start, end] inclusive. Consumed by the budget spend sync.
	FindExpensesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// GetDailySpending returns expense totals grouped by calendar day within
	// [start, end] inclusive, ordered by day ascending.
	GetDailySpending(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.DailySpending, error)

	// GetTotals returns income/expense/net totals for a user. A nil since
	// means all time.
	GetTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (*entity.TransactionTotals, error)

	// GetCategorySpending returns per-category totals for the given type,
	// ordered by total descending. A nil since means all time.
	GetCategorySpending(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType, since *time.Time) ([]entity.CategorySpending, error)

	// FindRecent returns the most recent transactions for a user, newest first.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// GetMonthlyTrends returns income/expense totals grouped by calendar month
	// since the given time, ordered chronologically.
	GetMonthlyTrends(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.MonthlyTrend, error)

	// CountAll returns the total number of transactions across all users.
	CountAll(ctx context.Context) (int64, error)

	// GetPlatformTotals returns income/expense/net totals across all users.
	GetPlatformTotals(ctx context.Context) (*entity.TransactionTotals, error)
}
