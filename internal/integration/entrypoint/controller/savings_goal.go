package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-finance/backend/internal/application/usecase/savingsgoal"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// SavingsGoalController handles savings goal endpoints.
type SavingsGoalController struct {
	listUseCase       *savingsgoal.ListGoalsUseCase
	getUseCase        *savingsgoal.GetGoalUseCase
	createUseCase     *savingsgoal.CreateGoalUseCase
	updateUseCase     *savingsgoal.UpdateGoalUseCase
	deleteUseCase     *savingsgoal.DeleteGoalUseCase
	contributeUseCase *savingsgoal.ContributeUseCase
	statsUseCase      *savingsgoal.GetStatsUseCase
}

// NewSavingsGoalController creates a new savings goal controller instance.
func NewSavingsGoalController(
	listUseCase *savingsgoal.ListGoalsUseCase,
	getUseCase *savingsgoal.GetGoalUseCase,
	createUseCase *savingsgoal.CreateGoalUseCase,
	updateUseCase *savingsgoal.UpdateGoalUseCase,
	deleteUseCase *savingsgoal.DeleteGoalUseCase,
	contributeUseCase *savingsgoal.ContributeUseCase,
	statsUseCase *savingsgoal.GetStatsUseCase,
) *SavingsGoalController {
	return &SavingsGoalController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		contributeUseCase: contributeUseCase,
		statsUseCase:      statsUseCase,
	}
}

// List handles GET /goals requests.
func (c *SavingsGoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savingsgoal.ListGoalsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = dto.GoalResponseFromEntity(g)
	}

	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: goals})
}

// Get handles GET /goals/:id requests.
func (c *SavingsGoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidGoalID(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), savingsgoal.GetGoalInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalDetailResponse{
		Goal:               dto.GoalResponseFromEntity(output.Goal),
		ProgressPercentage: output.ProgressPercentage,
		RemainingAmount:    output.RemainingAmount.String(),
		DaysRemaining:      output.DaysRemaining,
		RequiredMonthly:    output.RequiredMonthly.String(),
	})
}

// Create handles POST /goals requests.
func (c *SavingsGoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	priority := entity.GoalPriorityMedium
	if req.Priority != "" {
		priority = entity.GoalPriority(req.Priority)
	}
	reminderFrequency := entity.ReminderNever
	if req.ReminderFrequency != "" {
		reminderFrequency = entity.ReminderFrequency(req.ReminderFrequency)
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savingsgoal.CreateGoalInput{
		UserID:              userID,
		Title:               req.Title,
		Description:         req.Description,
		TargetAmount:        decimal.NewFromFloat(req.TargetAmount),
		TargetDate:          targetDate,
		Category:            entity.GoalCategory(req.Category),
		Priority:            priority,
		MonthlyContribution: decimal.NewFromFloat(req.MonthlyContribution),
		AutoContribute:      req.AutoContribute,
		ReminderFrequency:   reminderFrequency,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GoalResponseFromEntity(output.Goal))
}

// Update handles PATCH /goals/:id requests.
func (c *SavingsGoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidGoalID(ctx)
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := savingsgoal.UpdateGoalInput{
		UserID:         userID,
		GoalID:         goalID,
		Title:          req.Title,
		Description:    req.Description,
		AutoContribute: req.AutoContribute,
	}
	if req.TargetAmount != nil {
		targetAmount := decimal.NewFromFloat(*req.TargetAmount)
		input.TargetAmount = &targetAmount
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse("2006-01-02", *req.TargetDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.TargetDate = &targetDate
	}
	if req.Category != nil {
		category := entity.GoalCategory(*req.Category)
		input.Category = &category
	}
	if req.Priority != nil {
		priority := entity.GoalPriority(*req.Priority)
		input.Priority = &priority
	}
	if req.MonthlyContribution != nil {
		monthly := decimal.NewFromFloat(*req.MonthlyContribution)
		input.MonthlyContribution = &monthly
	}
	if req.ReminderFrequency != nil {
		frequency := entity.ReminderFrequency(*req.ReminderFrequency)
		input.ReminderFrequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalResponseFromEntity(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *SavingsGoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidGoalID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), savingsgoal.DeleteGoalInput{
		UserID: userID,
		GoalID: goalID,
	}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted successfully"})
}

// Contribute handles POST /goals/:id/contribute requests.
func (c *SavingsGoalController) Contribute(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		c.respondInvalidGoalID(ctx)
		return
	}

	var req dto.ContributeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidContribution),
		})
		return
	}

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), savingsgoal.ContributeInput{
		UserID: userID,
		GoalID: goalID,
		Amount: decimal.NewFromFloat(req.Amount),
		Note:   req.Note,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ContributeResponse{
		Goal:               dto.GoalResponseFromEntity(output.Goal),
		ProgressPercentage: output.ProgressPercentage,
		MilestonesCrossed:  output.MilestonesCrossed,
	})
}

// Stats handles GET /goals/stats requests.
func (c *SavingsGoalController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), savingsgoal.GetStatsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalStatsResponseFromEntity(output.Stats))
}

func (c *SavingsGoalController) respondInvalidGoalID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid goal ID",
		Code:  string(domainerror.ErrCodeMissingGoalFields),
	})
}

// handleGoalError maps goal errors to appropriate HTTP responses.
func (c *SavingsGoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *SavingsGoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidContribution,
		domainerror.ErrCodeInvalidGoalCategory,
		domainerror.ErrCodeInvalidGoalPriority,
		domainerror.ErrCodeInvalidReminderFrequency,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
