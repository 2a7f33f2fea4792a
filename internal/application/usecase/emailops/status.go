// Package emailops contains use cases for operating the email pipeline:
// inspecting the queue, verifying delivery, and triggering reports.
package emailops

import (
	"context"
	"fmt"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// GetStatusOutput describes the email pipeline state.
type GetStatusOutput struct {
	Configured    bool  `json:"configured"`
	WorkerEnabled bool  `json:"worker_enabled"`
	Pending       int64 `json:"pending"`
	Processing    int64 `json:"processing"`
	Sent          int64 `json:"sent"`
	Failed        int64 `json:"failed"`
}

// GetStatusUseCase reports whether email delivery is configured and how many
// jobs sit in each queue state.
type GetStatusUseCase struct {
	queueRepo     adapter.EmailQueueRepository
	configured    bool
	workerEnabled bool
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(queueRepo adapter.EmailQueueRepository, configured, workerEnabled bool) *GetStatusUseCase {
	return &GetStatusUseCase{
		queueRepo:     queueRepo,
		configured:    configured,
		workerEnabled: workerEnabled,
	}
}

// Execute returns the current email pipeline status.
func (uc *GetStatusUseCase) Execute(ctx context.Context) (*GetStatusOutput, error) {
	counts, err := uc.queueRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count email jobs: %w", err)
	}

	return &GetStatusOutput{
		Configured:    uc.configured,
		WorkerEnabled: uc.workerEnabled,
		Pending:       counts[entity.EmailStatusPending],
		Processing:    counts[entity.EmailStatusProcessing],
		Sent:          counts[entity.EmailStatusSent],
		Failed:        counts[entity.EmailStatusFailed],
	}, nil
}
