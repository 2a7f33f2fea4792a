// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a transaction by id, scoped to its owner.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves a filtered, paginated list of a user's transactions.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.TransactionFilter) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", userID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filter.Page - 1) * filter.Limit
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
	}, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a transaction, scoped to its owner.
func (r *transactionRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// FindExpensesInRange retrieves all expense transactions whose date lies
// within [start, end] inclusive.
func (r *transactionRepository) FindExpensesInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?",
			userID, string(entity.TransactionTypeExpense), start, end).
		Order("date ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// GetDailySpending returns expense totals grouped by calendar day. Grouping
// happens in memory so the same query runs on postgres and sqlite.
func (r *transactionRepository) GetDailySpending(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.DailySpending, error) {
	expenses, err := r.FindExpensesInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		total decimal.Decimal
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, tx := range expenses {
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[day] = b
		}
		b.total = b.total.Add(tx.Amount)
		b.count++
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	spending := make([]entity.DailySpending, len(days))
	for i, day := range days {
		spending[i] = entity.DailySpending{
			Date:             day,
			Total:            buckets[day].total,
			TransactionCount: buckets[day].count,
		}
	}
	return spending, nil
}

// GetTotals returns income/expense/net totals for a user. A nil since means
// all time.
func (r *transactionRepository) GetTotals(ctx context.Context, userID uuid.UUID, since *time.Time) (*entity.TransactionTotals, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", since)
	}
	return r.sumTotals(query)
}

// GetPlatformTotals returns income/expense/net totals across all users.
func (r *transactionRepository) GetPlatformTotals(ctx context.Context) (*entity.TransactionTotals, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})
	return r.sumTotals(query)
}

func (r *transactionRepository) sumTotals(query *gorm.DB) (*entity.TransactionTotals, error) {
	var incomeResult struct {
		Total decimal.Decimal
	}
	incomeQuery := query.Session(&gorm.Session{}).
		Where("type = ?", string(entity.TransactionTypeIncome))
	if err := incomeQuery.Select("COALESCE(SUM(amount), 0) as total").Scan(&incomeResult).Error; err != nil {
		return nil, err
	}

	var expenseResult struct {
		Total decimal.Decimal
	}
	expenseQuery := query.Session(&gorm.Session{}).
		Where("type = ?", string(entity.TransactionTypeExpense))
	if err := expenseQuery.Select("COALESCE(SUM(amount), 0) as total").Scan(&expenseResult).Error; err != nil {
		return nil, err
	}

	return &entity.TransactionTotals{
		IncomeTotal:  incomeResult.Total,
		ExpenseTotal: expenseResult.Total,
		NetTotal:     incomeResult.Total.Sub(expenseResult.Total),
	}, nil
}

// GetCategorySpending returns per-category totals for the given type, ordered
// by total descending.
func (r *transactionRepository) GetCategorySpending(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType, since *time.Time) ([]entity.CategorySpending, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).
		Where("user_id = ? AND type = ?", userID, string(transactionType))
	if since != nil {
		query = query.Where("date >= ?", since)
	}

	var rows []struct {
		Category string
		Total    decimal.Decimal
		Count    int
	}
	result := query.
		Select("category, COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Group("category").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	spending := make([]entity.CategorySpending, len(rows))
	for i, row := range rows {
		spending[i] = entity.CategorySpending{
			Category:         row.Category,
			Total:            row.Total,
			TransactionCount: row.Count,
		}
	}
	return spending, nil
}

// FindRecent returns the most recent transactions for a user, newest first.
func (r *transactionRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// GetMonthlyTrends returns income/expense totals grouped by calendar month.
// Grouping happens in memory so the same query runs on postgres and sqlite.
func (r *transactionRepository) GetMonthlyTrends(ctx context.Context, userID uuid.UUID, since time.Time) ([]entity.MonthlyTrend, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	type monthKey struct {
		year  int
		month time.Month
	}
	buckets := make(map[monthKey]*entity.MonthlyTrend)
	keys := make([]monthKey, 0)
	for _, tm := range transactionModels {
		key := monthKey{year: tm.Date.Year(), month: tm.Date.Month()}
		trend, ok := buckets[key]
		if !ok {
			trend = &entity.MonthlyTrend{
				Year:     key.year,
				Month:    key.month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			buckets[key] = trend
			keys = append(keys, key)
		}
		switch entity.TransactionType(tm.Type) {
		case entity.TransactionTypeIncome:
			trend.Income = trend.Income.Add(tm.Amount)
		case entity.TransactionTypeExpense:
			trend.Expenses = trend.Expenses.Add(tm.Amount)
		}
	}

	trends := make([]entity.MonthlyTrend, len(keys))
	for i, key := range keys {
		trends[i] = *buckets[key]
	}
	return trends, nil
}

// CountAll returns the total number of transactions across all users.
func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
