package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-finance/backend/internal/application/usecase/chat"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// ChatController handles the AI financial advisor endpoint.
type ChatController struct {
	askUseCase *chat.AskUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(askUseCase *chat.AskUseCase) *ChatController {
	return &ChatController{
		askUseCase: askUseCase,
	}
}

// Ask handles POST /chat requests.
func (c *ChatController) Ask(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.askUseCase.Execute(ctx.Request.Context(), chat.AskInput{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.AskResponse{
		Response:    output.Response,
		Suggestions: output.Suggestions,
		Source:      output.Source,
	})
}
