package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smart-finance/backend/internal/application/usecase/emailops"
	"github.com/smart-finance/backend/internal/integration/entrypoint/dto"
	"github.com/smart-finance/backend/internal/integration/entrypoint/middleware"
)

// EmailController exposes email pipeline operations.
type EmailController struct {
	getStatusUseCase     *emailops.GetStatusUseCase
	testSendUseCase      *emailops.TestSendUseCase
	monthlyReportUseCase *emailops.MonthlyReportUseCase
}

// NewEmailController creates a new email controller instance.
func NewEmailController(
	getStatusUseCase *emailops.GetStatusUseCase,
	testSendUseCase *emailops.TestSendUseCase,
	monthlyReportUseCase *emailops.MonthlyReportUseCase,
) *EmailController {
	return &EmailController{
		getStatusUseCase:     getStatusUseCase,
		testSendUseCase:      testSendUseCase,
		monthlyReportUseCase: monthlyReportUseCase,
	}
}

// Status handles GET /email/status requests.
func (c *EmailController) Status(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getStatusUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.EmailStatusResponseFromOutput(output))
}

// TestSend handles POST /email/test requests.
func (c *EmailController) TestSend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.testSendUseCase.Execute(ctx.Request.Context(), emailops.TestSendInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to queue test email",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.TestSendResponse{
		Message:   "Test email queued",
		Recipient: output.Recipient,
	})
}

// MonthlyReport handles POST /email/monthly-report requests.
func (c *EmailController) MonthlyReport(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.monthlyReportUseCase.Execute(ctx.Request.Context(), emailops.MonthlyReportInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to queue monthly report",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MonthlyReportResponse{
		Message:   "Monthly report queued",
		Month:     output.Month,
		Recipient: output.Recipient,
	})
}
