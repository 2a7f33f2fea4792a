// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWelcomeEmail queues the post-registration welcome email.
func (s *Service) QueueWelcomeEmail(ctx context.Context, userEmail, userName string) error {
	subject := "Welcome to Smart Finance!"

	templateData := map[string]interface{}{
		"user_name":     userName,
		"dashboard_url": s.appBaseURL + "/dashboard",
	}

	job := entity.NewEmailJob(entity.TemplateWelcome, userEmail, userName, subject, templateData)
	return s.enqueue(ctx, job, "welcome")
}

// QueueBudgetAlertEmail queues a budget threshold alert email.
func (s *Service) QueueBudgetAlertEmail(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	subject := fmt.Sprintf("Budget alert: %s at %d%%", input.CategoryName, input.Percentage)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"category_name": input.CategoryName,
		"spent_amount":  input.SpentAmount,
		"budget_amount": input.BudgetAmount,
		"percentage":    fmt.Sprintf("%d", input.Percentage),
		"budgets_url":   s.appBaseURL + "/budgets",
	}

	job := entity.NewEmailJob(entity.TemplateBudgetAlert, input.UserEmail, input.UserName, subject, templateData)
	return s.enqueue(ctx, job, "budget alert")
}

// QueueGoalAchievedEmail queues a savings goal achievement email.
func (s *Service) QueueGoalAchievedEmail(ctx context.Context, input adapter.QueueGoalAchievedInput) error {
	subject := fmt.Sprintf("Congratulations! You reached %q", input.GoalTitle)

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"goal_title": input.GoalTitle,
		"amount":     input.Amount,
		"goals_url":  s.appBaseURL + "/goals",
	}

	job := entity.NewEmailJob(entity.TemplateGoalAchieved, input.UserEmail, input.UserName, subject, templateData)
	return s.enqueue(ctx, job, "goal achieved")
}

// QueueMonthlyReportEmail queues a monthly financial report email.
func (s *Service) QueueMonthlyReportEmail(ctx context.Context, input adapter.QueueMonthlyReportInput) error {
	subject := fmt.Sprintf("Your %s financial report", input.Month)

	templateData := map[string]interface{}{
		"user_name":     input.UserName,
		"month":         input.Month,
		"income":        input.Income,
		"expenses":      input.Expenses,
		"balance":       input.Balance,
		"dashboard_url": s.appBaseURL + "/dashboard",
	}

	job := entity.NewEmailJob(entity.TemplateMonthlyReport, input.UserEmail, input.UserName, subject, templateData)
	return s.enqueue(ctx, job, "monthly report")
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob, kind string) error {
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue "+kind+" email",
			err,
		)
	}
	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
