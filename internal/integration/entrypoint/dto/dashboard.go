package dto

import (
	"fmt"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// TotalsResponse represents aggregated income and expense totals.
type TotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// DashboardStatsResponse represents the response body for dashboard statistics.
type DashboardStatsResponse struct {
	Totals             TotalsResponse        `json:"totals"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	WindowDays         int                   `json:"window_days"`
}

// CategoryBreakdownItemResponse represents one category's aggregated spending.
type CategoryBreakdownItemResponse struct {
	Category         string `json:"category"`
	Total            string `json:"total"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryBreakdownResponse represents the response body for the category breakdown.
type CategoryBreakdownResponse struct {
	Categories []CategoryBreakdownItemResponse `json:"categories"`
}

// MonthlyTrendResponse represents one month's income and expense totals.
type MonthlyTrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// TrendsResponse represents the response body for monthly trends.
type TrendsResponse struct {
	Trends []MonthlyTrendResponse `json:"trends"`
	Months int                    `json:"months"`
}

// TotalsResponseFromEntity converts transaction totals to their API representation.
func TotalsResponseFromEntity(t *entity.TransactionTotals) TotalsResponse {
	return TotalsResponse{
		Income:   t.IncomeTotal.String(),
		Expenses: t.ExpenseTotal.String(),
		Net:      t.NetTotal.String(),
	}
}

// TrendsResponseFromEntities converts a monthly trend series to its API representation.
func TrendsResponseFromEntities(trends []entity.MonthlyTrend, months int) TrendsResponse {
	out := make([]MonthlyTrendResponse, len(trends))
	for i, t := range trends {
		out[i] = MonthlyTrendResponse{
			Month:    fmt.Sprintf("%04d-%02d", t.Year, int(t.Month)),
			Income:   t.Income.String(),
			Expenses: t.Expenses.String(),
		}
	}
	return TrendsResponse{Trends: out, Months: months}
}
