package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/usecase/budget"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase      *budget.ListBudgetsUseCase
	createUseCase    *budget.CreateBudgetUseCase
	updateUseCase    *budget.UpdateBudgetUseCase
	deleteUseCase    *budget.DeleteBudgetUseCase
	syncUseCase      *budget.SyncSpendingUseCase
	analyticsUseCase *budget.GetAnalyticsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	syncUseCase *budget.SyncSpendingUseCase,
	analyticsUseCase *budget.GetAnalyticsUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		syncUseCase:      syncUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	budgets := make([]dto.BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = dto.BudgetResponseFromEntity(b)
	}

	ctx.JSON(http.StatusOK, dto.BudgetListResponse{Budgets: budgets})
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.respondInvalidDate(ctx)
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.respondInvalidDate(ctx)
		return
	}

	input := budget.CreateBudgetInput{
		UserID:         userID,
		Name:           req.Name,
		Period:         entity.BudgetPeriod(req.Period),
		StartDate:      startDate,
		EndDate:        endDate,
		Categories:     categoryInputsFromRequest(req.Categories),
		AlertThreshold: req.AlertThreshold,
	}
	if req.Notifications != nil {
		input.Notifications = &entity.BudgetNotificationSettings{
			Enabled:        req.Notifications.Enabled,
			ThresholdAlert: req.Notifications.ThresholdAlert,
			DailyReminder:  req.Notifications.DailyReminder,
		}
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.BudgetResponseFromEntity(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidBudgetID(ctx)
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		UserID:         userID,
		BudgetID:       budgetID,
		Name:           req.Name,
		AlertThreshold: req.AlertThreshold,
		IsActive:       req.IsActive,
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			c.respondInvalidDate(ctx)
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			c.respondInvalidDate(ctx)
			return
		}
		input.EndDate = &endDate
	}
	if req.Categories != nil {
		input.Categories = categoryInputsFromRequest(req.Categories)
	}
	if req.Notifications != nil {
		input.Notifications = &entity.BudgetNotificationSettings{
			Enabled:        req.Notifications.Enabled,
			ThresholdAlert: req.Notifications.ThresholdAlert,
			DailyReminder:  req.Notifications.DailyReminder,
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetResponseFromEntity(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidBudgetID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted successfully"})
}

// Sync handles POST /budgets/:id/sync requests. It recomputes the budget's
// per-category and total spent amounts from the transaction store.
func (c *BudgetController) Sync(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidBudgetID(ctx)
		return
	}

	output, err := c.syncUseCase.Execute(ctx.Request.Context(), budget.SyncSpendingInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetResponseFromEntity(output.Budget))
}

// Analytics handles GET /budgets/:id/analytics requests.
func (c *BudgetController) Analytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidBudgetID(ctx)
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), budget.GetAnalyticsInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetAnalyticsResponse{
		Budget:           dto.BudgetResponseFromEntity(output.Budget),
		CategoryAnalysis: output.CategoryAnalysis,
		HealthMetrics:    output.HealthMetrics,
		DailySpending:    dto.DailySpendingResponseFromEntities(output.DailySpending),
	})
}

func (c *BudgetController) respondInvalidBudgetID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid budget ID",
		Code:  string(domainerror.ErrCodeMissingBudgetFields),
	})
}

func (c *BudgetController) respondInvalidDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format, expected YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidBudgetWindow),
	})
}

// handleBudgetError maps budget errors to appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetWindow,
		domainerror.ErrCodeInvalidBudgetCategory,
		domainerror.ErrCodeNegativeBudgetAmount,
		domainerror.ErrCodeInvalidAlertThreshold,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeMissingBudgetName,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// categoryInputsFromRequest converts category allocations from request form.
func categoryInputsFromRequest(categories []dto.BudgetCategoryRequest) []budget.CategoryInput {
	inputs := make([]budget.CategoryInput, len(categories))
	for i, c := range categories {
		inputs[i] = budget.CategoryInput{
			Name:         c.Name,
			BudgetAmount: decimal.NewFromFloat(c.BudgetAmount),
			IsActive:     c.IsActive,
		}
	}
	return inputs
}
