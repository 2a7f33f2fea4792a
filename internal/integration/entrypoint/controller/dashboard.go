package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smart-finance/backend/internal/application/usecase/dashboard"
	"github.com/smart-finance/backend/internal/domain/entity"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregate endpoints.
type DashboardController struct {
	statsUseCase     *dashboard.GetStatsUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	trendsUseCase    *dashboard.GetTrendsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statsUseCase *dashboard.GetStatsUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	trendsUseCase *dashboard.GetTrendsUseCase,
) *DashboardController {
	return &DashboardController{
		statsUseCase:     statsUseCase,
		breakdownUseCase: breakdownUseCase,
		trendsUseCase:    trendsUseCase,
	}
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetStatsInput{UserID: userID}
	if windowStr := ctx.Query("window_days"); windowStr != "" {
		if window, err := strconv.Atoi(windowStr); err == nil {
			input.WindowDays = window
		}
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	recent := make([]dto.TransactionResponse, len(output.RecentTransactions))
	for i, t := range output.RecentTransactions {
		recent[i] = dto.TransactionResponseFromEntity(t)
	}

	ctx.JSON(http.StatusOK, dto.DashboardStatsResponse{
		Totals:             dto.TotalsResponseFromEntity(output.Totals),
		RecentTransactions: recent,
		WindowDays:         output.WindowDays,
	})
}

// CategoryBreakdown handles GET /dashboard/categories requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetCategoryBreakdownInput{UserID: userID}
	if typeStr := ctx.Query("type"); typeStr != "" {
		input.Type = entity.TransactionType(typeStr)
	}
	if windowStr := ctx.Query("window_days"); windowStr != "" {
		if window, err := strconv.Atoi(windowStr); err == nil {
			input.WindowDays = window
		}
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	categories := make([]dto.CategoryBreakdownItemResponse, len(output.Categories))
	for i, cs := range output.Categories {
		categories[i] = dto.CategoryBreakdownItemResponse{
			Category:         cs.Category,
			Total:            cs.Total.String(),
			TransactionCount: cs.TransactionCount,
		}
	}

	ctx.JSON(http.StatusOK, dto.CategoryBreakdownResponse{Categories: categories})
}

// Trends handles GET /dashboard/trends requests.
func (c *DashboardController) Trends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := dashboard.GetTrendsInput{UserID: userID}
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		if months, err := strconv.Atoi(monthsStr); err == nil {
			input.Months = months
		}
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.TrendsResponseFromEntities(output.Trends, output.Months))
}
