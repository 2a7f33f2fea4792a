package emailops

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/adapter"
)

// MonthlyReportInput represents the input for the monthly report operation.
type MonthlyReportInput struct {
	UserID uuid.UUID
}

// MonthlyReportOutput represents the result of the monthly report operation.
type MonthlyReportOutput struct {
	Month     string `json:"month"`
	Recipient string `json:"recipient"`
}

// MonthlyReportUseCase computes the previous calendar month's totals for a
// user and queues the monthly report email.
type MonthlyReportUseCase struct {
	userRepo        adapter.UserRepository
	transactionRepo adapter.TransactionRepository
	emailService    adapter.EmailService
	now             func() time.Time
}

// NewMonthlyReportUseCase creates a new MonthlyReportUseCase instance.
func NewMonthlyReportUseCase(
	userRepo adapter.UserRepository,
	transactionRepo adapter.TransactionRepository,
	emailService adapter.EmailService,
) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		emailService:    emailService,
		now:             time.Now,
	}
}

// WithClock overrides the use case's clock. Intended for tests.
func (uc *MonthlyReportUseCase) WithClock(now func() time.Time) *MonthlyReportUseCase {
	uc.now = now
	return uc
}

// Execute queues a report covering the calendar month before the current one.
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, input MonthlyReportInput) (*MonthlyReportOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	nowUTC := uc.now().UTC()
	firstOfCurrent := time.Date(nowUTC.Year(), nowUTC.Month(), 1, 0, 0, 0, 0, time.UTC)
	firstOfPrevious := firstOfCurrent.AddDate(0, -1, 0)

	trends, err := uc.transactionRepo.GetMonthlyTrends(ctx, input.UserID, firstOfPrevious)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly totals: %w", err)
	}

	income := decimal.Zero
	expenses := decimal.Zero
	for _, trend := range trends {
		if trend.Year == firstOfPrevious.Year() && trend.Month == firstOfPrevious.Month() {
			income = trend.Income
			expenses = trend.Expenses
			break
		}
	}

	monthLabel := fmt.Sprintf("%s %d", firstOfPrevious.Month(), firstOfPrevious.Year())
	err = uc.emailService.QueueMonthlyReportEmail(ctx, adapter.QueueMonthlyReportInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		Month:     monthLabel,
		Income:    income.StringFixed(2),
		Expenses:  expenses.StringFixed(2),
		Balance:   income.Sub(expenses).StringFixed(2),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue monthly report email: %w", err)
	}

	return &MonthlyReportOutput{Month: monthLabel, Recipient: user.Email}, nil
}
