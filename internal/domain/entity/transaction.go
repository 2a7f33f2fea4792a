// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodBankTransfer  PaymentMethod = "bank-transfer"
	PaymentMethodDigitalWallet PaymentMethod = "digital-wallet"
	PaymentMethodOther         PaymentMethod = "other"
)

// IncomeCategories is the fixed set of categories valid for income transactions.
var IncomeCategories = []string{
	"salary", "freelance", "investment", "gift", "other-income",
}

// ExpenseCategories is the fixed set of categories valid for expense transactions.
var ExpenseCategories = []string{
	"food", "transportation", "utilities", "rent", "entertainment",
	"healthcare", "shopping", "education", "travel", "bills", "other-expense",
}

// Transaction represents a single money movement recorded by a user.
// Amount is always positive; Type distinguishes income from expense.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          time.Time
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
	date time.Time,
	paymentMethod PaymentMethod,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Type:          transactionType,
		Amount:        amount,
		Category:      category,
		Description:   description,
		Date:          date,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidTransactionCategory reports whether category is valid for the given type.
// Matching is case-insensitive; stored categories are lowercase.
func IsValidTransactionCategory(transactionType TransactionType, category string) bool {
	var set []string
	switch transactionType {
	case TransactionTypeIncome:
		set = IncomeCategories
	case TransactionTypeExpense:
		set = ExpenseCategories
	default:
		return false
	}

	for _, c := range set {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// IsValidPaymentMethod reports whether the payment method is one of the fixed set.
func IsValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodDigitalWallet, PaymentMethodOther:
		return true
	}
	return false
}

// TransactionListResult represents a page of transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionTotals represents aggregated totals for transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// DailySpending represents the total expense amount for one calendar day.
type DailySpending struct {
	Date             time.Time
	Total            decimal.Decimal
	TransactionCount int
}

// CategorySpending represents aggregated spending for one category.
type CategorySpending struct {
	Category         string
	Total            decimal.Decimal
	TransactionCount int
}

// MonthlyTrend represents income/expense totals for one calendar month.
type MonthlyTrend struct {
	Year     int
	Month    time.Month
	Income   decimal.Decimal
	Expenses decimal.Decimal
}
