package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/usecase/admin"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// AdminController handles the admin panel endpoints.
type AdminController struct {
	listUsersUseCase     *admin.ListUsersUseCase
	setUserStatusUseCase *admin.SetUserStatusUseCase
	overviewUseCase      *admin.GetOverviewUseCase
	createTipUseCase     *admin.CreateTipUseCase
	listTipsUseCase      *admin.ListTipsUseCase
	updateTipUseCase     *admin.UpdateTipUseCase
	deleteTipUseCase     *admin.DeleteTipUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	listUsersUseCase *admin.ListUsersUseCase,
	setUserStatusUseCase *admin.SetUserStatusUseCase,
	overviewUseCase *admin.GetOverviewUseCase,
	createTipUseCase *admin.CreateTipUseCase,
	listTipsUseCase *admin.ListTipsUseCase,
	updateTipUseCase *admin.UpdateTipUseCase,
	deleteTipUseCase *admin.DeleteTipUseCase,
) *AdminController {
	return &AdminController{
		listUsersUseCase:     listUsersUseCase,
		setUserStatusUseCase: setUserStatusUseCase,
		overviewUseCase:      overviewUseCase,
		createTipUseCase:     createTipUseCase,
		listTipsUseCase:      listTipsUseCase,
		updateTipUseCase:     updateTipUseCase,
		deleteTipUseCase:     deleteTipUseCase,
	}
}

// ListUsers handles GET /admin/users requests.
func (c *AdminController) ListUsers(ctx *gin.Context) {
	input := admin.ListUsersInput{
		Search: ctx.Query("search"),
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUsersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserListResponseFromResult(output.Result))
}

// SetUserStatus handles PATCH /admin/users/:id/status requests.
func (c *AdminController) SetUserStatus(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
		})
		return
	}

	var req dto.SetUserStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setUserStatusUseCase.Execute(ctx.Request.Context(), admin.SetUserStatusInput{
		UserID:   userID,
		IsActive: *req.IsActive,
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserResponseFromEntity(output.User))
}

// Overview handles GET /admin/overview requests.
func (c *AdminController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PlatformOverviewResponse{
		TotalUsers:        output.TotalUsers,
		TotalTransactions: output.TotalTransactions,
		Volume:            dto.TotalsResponseFromEntity(output.Volume),
	})
}

// CreateTip handles POST /admin/tips requests.
func (c *AdminController) CreateTip(ctx *gin.Context) {
	adminID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createTipUseCase.Execute(ctx.Request.Context(), admin.CreateTipInput{
		CreatedBy: adminID,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TipResponseFromEntity(output.Tip))
}

// ListTips handles GET /admin/tips requests.
func (c *AdminController) ListTips(ctx *gin.Context) {
	output, err := c.listTipsUseCase.Execute(ctx.Request.Context(), admin.ListTipsInput{
		OnlyActive: ctx.Query("only_active") == "true",
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	tips := make([]dto.TipResponse, len(output.Tips))
	for i, tip := range output.Tips {
		tips[i] = dto.TipResponseFromEntity(tip)
	}

	ctx.JSON(http.StatusOK, dto.TipListResponse{Tips: tips})
}

// UpdateTip handles PATCH /admin/tips/:id requests.
func (c *AdminController) UpdateTip(ctx *gin.Context) {
	tipID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tip ID",
		})
		return
	}

	var req dto.UpdateTipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateTipUseCase.Execute(ctx.Request.Context(), admin.UpdateTipInput{
		TipID:    tipID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
		IsActive: req.IsActive,
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TipResponseFromEntity(output.Tip))
}

// DeleteTip handles DELETE /admin/tips/:id requests.
func (c *AdminController) DeleteTip(ctx *gin.Context) {
	tipID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tip ID",
		})
		return
	}

	if err := c.deleteTipUseCase.Execute(ctx.Request.Context(), admin.DeleteTipInput{
		TipID: tipID,
	}); err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Tip deleted successfully"})
}

// handleAdminError maps admin errors to appropriate HTTP responses.
func (c *AdminController) handleAdminError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
	case errors.Is(err, domainerror.ErrTipNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Tip not found",
		})
	case errors.Is(err, domainerror.ErrMissingTipFields):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
