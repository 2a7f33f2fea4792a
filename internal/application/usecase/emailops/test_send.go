package emailops

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
)

// TestSendInput represents the input for the test send operation.
type TestSendInput struct {
	UserID uuid.UUID
}

// TestSendOutput represents the result of the test send operation.
type TestSendOutput struct {
	Recipient string `json:"recipient"`
}

// TestSendUseCase queues a delivery-test email to the requesting account so
// provider configuration can be verified end to end.
type TestSendUseCase struct {
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewTestSendUseCase creates a new TestSendUseCase instance.
func NewTestSendUseCase(userRepo adapter.UserRepository, emailService adapter.EmailService) *TestSendUseCase {
	return &TestSendUseCase{
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// Execute queues a test email addressed to the user's registered address.
func (uc *TestSendUseCase) Execute(ctx context.Context, input TestSendInput) (*TestSendOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := uc.emailService.QueueWelcomeEmail(ctx, user.Email, user.Name); err != nil {
		return nil, fmt.Errorf("failed to queue test email: %w", err)
	}

	return &TestSendOutput{Recipient: user.Email}, nil
}
