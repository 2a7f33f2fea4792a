package dto

import "github.com/smart-finance/backend/internal/application/usecase/emailops"

// EmailStatusResponse reports the state of the email pipeline.
type EmailStatusResponse struct {
	Configured    bool  `json:"configured"`
	WorkerEnabled bool  `json:"worker_enabled"`
	Pending       int64 `json:"pending"`
	Processing    int64 `json:"processing"`
	Sent          int64 `json:"sent"`
	Failed        int64 `json:"failed"`
}

// TestSendResponse confirms a queued delivery-test email.
type TestSendResponse struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}

// MonthlyReportResponse confirms a queued monthly report email.
type MonthlyReportResponse struct {
	Message   string `json:"message"`
	Month     string `json:"month"`
	Recipient string `json:"recipient"`
}

// EmailStatusResponseFromOutput converts pipeline status to a response DTO.
func EmailStatusResponseFromOutput(output *emailops.GetStatusOutput) EmailStatusResponse {
	return EmailStatusResponse{
		Configured:    output.Configured,
		WorkerEnabled: output.WorkerEnabled,
		Pending:       output.Pending,
		Processing:    output.Processing,
		Sent:          output.Sent,
		Failed:        output.Failed,
	}
}
