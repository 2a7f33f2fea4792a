// Package auth contains authentication use cases: registration, login,
// token refresh and logout.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// RegisterInput represents the input for user registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterOutput represents the output of user registration.
type RegisterOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// RegisterUseCase handles user registration logic.
type RegisterUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
	emailService    adapter.EmailService
}

// NewRegisterUseCase creates a new RegisterUseCase instance.
// The email service may be nil, in which case no welcome email is queued.
func NewRegisterUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		emailService:    emailService,
	}
}

// Execute performs the registration: validates the fields, stores the user
// with a bcrypt hash, queues the welcome email and issues a token pair.
// A welcome email failure does not fail the registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" || email == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingAuthFields,
			"name and email are required",
			nil,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password must be at least 8 characters",
			err,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyRegistered,
			"email already registered",
			domainerror.ErrEmailAlreadyRegistered,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(name, email, hash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if uc.emailService != nil {
		// Best-effort: a failed welcome email must not fail registration.
		_ = uc.emailService.QueueWelcomeEmail(ctx, user.Email, user.Name)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterOutput{User: user, Tokens: tokens}, nil
}
