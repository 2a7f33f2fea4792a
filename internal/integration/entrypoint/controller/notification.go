package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/usecase/notification"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	listUseCase        *notification.ListNotificationsUseCase
	markReadUseCase    *notification.MarkReadUseCase
	markAllReadUseCase *notification.MarkAllReadUseCase
	deleteUseCase      *notification.DeleteNotificationUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(
	listUseCase *notification.ListNotificationsUseCase,
	markReadUseCase *notification.MarkReadUseCase,
	markAllReadUseCase *notification.MarkAllReadUseCase,
	deleteUseCase *notification.DeleteNotificationUseCase,
) *NotificationController {
	return &NotificationController{
		listUseCase:        listUseCase,
		markReadUseCase:    markReadUseCase,
		markAllReadUseCase: markAllReadUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// List handles GET /notifications requests.
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := notification.ListNotificationsInput{
		UserID:     userID,
		UnreadOnly: ctx.Query("unread_only") == "true",
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	notifications := make([]dto.NotificationResponse, len(output.Notifications))
	for i, n := range output.Notifications {
		notifications[i] = dto.NotificationResponseFromEntity(n)
	}

	ctx.JSON(http.StatusOK, dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   output.UnreadCount,
	})
}

// MarkRead handles POST /notifications/:id/read requests.
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID",
		})
		return
	}

	if err := c.markReadUseCase.Execute(ctx.Request.Context(), notification.MarkReadInput{
		UserID:         userID,
		NotificationID: notificationID,
	}); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}

// MarkAllRead handles POST /notifications/read-all requests.
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if err := c.markAllReadUseCase.Execute(ctx.Request.Context(), notification.MarkAllReadInput{
		UserID: userID,
	}); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All notifications marked as read"})
}

// Delete handles DELETE /notifications/:id requests.
func (c *NotificationController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	notificationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid notification ID",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), notification.DeleteNotificationInput{
		UserID:         userID,
		NotificationID: notificationID,
	}); err != nil {
		c.handleNotificationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification deleted successfully"})
}

// handleNotificationError maps notification errors to appropriate HTTP responses.
func (c *NotificationController) handleNotificationError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrNotificationNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Notification not found",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
