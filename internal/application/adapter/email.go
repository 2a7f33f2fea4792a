// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailQueueRepository defines the interface for email queue persistence operations.
type EmailQueueRepository interface {
	// Create adds a new email job to the queue.
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetByID retrieves a specific job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// CountByStatus returns the number of jobs in each status.
	CountByStatus(ctx context.Context) (map[entity.EmailStatus]int64, error)
}

// QueueBudgetAlertInput represents the input for queueing a budget alert email.
type QueueBudgetAlertInput struct {
	UserEmail    string
	UserName     string
	CategoryName string
	SpentAmount  string
	BudgetAmount string
	Percentage   int
}

// QueueGoalAchievedInput represents the input for queueing a goal achievement email.
type QueueGoalAchievedInput struct {
	UserEmail string
	UserName  string
	GoalTitle string
	Amount    string
}

// QueueMonthlyReportInput represents the input for queueing a monthly report email.
type QueueMonthlyReportInput struct {
	UserEmail string
	UserName  string
	Month     string
	Income    string
	Expenses  string
	Balance   string
}

// EmailService defines the interface for queueing application emails.
type EmailService interface {
	// QueueWelcomeEmail queues the post-registration welcome email.
	QueueWelcomeEmail(ctx context.Context, userEmail, userName string) error

	// QueueBudgetAlertEmail queues a budget threshold alert email.
	QueueBudgetAlertEmail(ctx context.Context, input QueueBudgetAlertInput) error

	// QueueGoalAchievedEmail queues a savings goal achievement email.
	QueueGoalAchievedEmail(ctx context.Context, input QueueGoalAchievedInput) error

	// QueueMonthlyReportEmail queues a monthly financial report email.
	QueueMonthlyReportEmail(ctx context.Context, input QueueMonthlyReportInput) error
}
