package dto

import (
	"time"

	"github.com/smart-finance/backend/internal/application/usecase/budget"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// BudgetCategoryRequest represents one category allocation in a budget request.
type BudgetCategoryRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	BudgetAmount float64 `json:"budget_amount" binding:"required,gt=0"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// BudgetNotificationsRequest represents the notification settings in a budget request.
type BudgetNotificationsRequest struct {
	Enabled        bool `json:"enabled"`
	ThresholdAlert bool `json:"threshold_alert"`
	DailyReminder  bool `json:"daily_reminder"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name           string                      `json:"name" binding:"required,min=1,max=100"`
	Period         string                      `json:"period" binding:"required,oneof=weekly monthly quarterly yearly"`
	StartDate      string                      `json:"start_date" binding:"required"`
	EndDate        string                      `json:"end_date" binding:"required"`
	Categories     []BudgetCategoryRequest     `json:"categories" binding:"required,min=1,dive"`
	AlertThreshold *int                        `json:"alert_threshold,omitempty" binding:"omitempty,min=1,max=100"`
	Notifications  *BudgetNotificationsRequest `json:"notifications,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name           *string                     `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Period         *string                     `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
	StartDate      *string                     `json:"start_date,omitempty"`
	EndDate        *string                     `json:"end_date,omitempty"`
	Categories     []BudgetCategoryRequest     `json:"categories,omitempty" binding:"omitempty,dive"`
	AlertThreshold *int                        `json:"alert_threshold,omitempty" binding:"omitempty,min=1,max=100"`
	IsActive       *bool                       `json:"is_active,omitempty"`
	Notifications  *BudgetNotificationsRequest `json:"notifications,omitempty"`
}

// BudgetCategoryResponse represents one category allocation in API responses.
type BudgetCategoryResponse struct {
	Name            string `json:"name"`
	BudgetAmount    string `json:"budget_amount"`
	SpentAmount     string `json:"spent_amount"`
	RemainingAmount string `json:"remaining_amount"`
	IsActive        bool   `json:"is_active"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID             string                     `json:"id"`
	UserID         string                     `json:"user_id"`
	Name           string                     `json:"name"`
	Period         string                     `json:"period"`
	StartDate      string                     `json:"start_date"`
	EndDate        string                     `json:"end_date"`
	Categories     []BudgetCategoryResponse   `json:"categories"`
	TotalBudget    string                     `json:"total_budget"`
	TotalSpent     string                     `json:"total_spent"`
	AlertThreshold int                        `json:"alert_threshold"`
	IsActive       bool                       `json:"is_active"`
	Notifications  BudgetNotificationsRequest `json:"notifications"`
	CreatedAt      time.Time                  `json:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at"`
}

// BudgetListResponse represents the response body for budget listing.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// DailySpendingResponse represents one day of spending in analytics responses.
type DailySpendingResponse struct {
	Date             string `json:"date"`
	Total            string `json:"total"`
	TransactionCount int    `json:"transaction_count"`
}

// BudgetAnalyticsResponse represents the response body for budget analytics.
type BudgetAnalyticsResponse struct {
	Budget           BudgetResponse            `json:"budget"`
	CategoryAnalysis []budget.CategoryAnalysis `json:"category_analysis"`
	HealthMetrics    budget.HealthMetrics      `json:"health_metrics"`
	DailySpending    []DailySpendingResponse   `json:"daily_spending"`
}

// BudgetResponseFromEntity converts a budget entity to its API representation.
func BudgetResponseFromEntity(b *entity.Budget) BudgetResponse {
	categories := make([]BudgetCategoryResponse, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = BudgetCategoryResponse{
			Name:            c.Name,
			BudgetAmount:    c.BudgetAmount.String(),
			SpentAmount:     c.SpentAmount.String(),
			RemainingAmount: c.BudgetAmount.Sub(c.SpentAmount).String(),
			IsActive:        c.IsActive,
		}
	}

	return BudgetResponse{
		ID:             b.ID.String(),
		UserID:         b.UserID.String(),
		Name:           b.Name,
		Period:         string(b.Period),
		StartDate:      b.StartDate.Format("2006-01-02"),
		EndDate:        b.EndDate.Format("2006-01-02"),
		Categories:     categories,
		TotalBudget:    b.TotalBudget.String(),
		TotalSpent:     b.TotalSpent.String(),
		AlertThreshold: b.AlertThreshold,
		IsActive:       b.IsActive,
		Notifications: BudgetNotificationsRequest{
			Enabled:        b.Notifications.Enabled,
			ThresholdAlert: b.Notifications.ThresholdAlert,
			DailyReminder:  b.Notifications.DailyReminder,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// DailySpendingResponseFromEntities converts a daily spending series to its API representation.
func DailySpendingResponseFromEntities(days []entity.DailySpending) []DailySpendingResponse {
	out := make([]DailySpendingResponse, len(days))
	for i, d := range days {
		out[i] = DailySpendingResponse{
			Date:             d.Date.Format("2006-01-02"),
			Total:            d.Total.String(),
			TransactionCount: d.TransactionCount,
		}
	}
	return out
}
