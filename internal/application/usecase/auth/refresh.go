package auth

import (
	"context"
	"fmt"

	"github.com/smart-finance/backend/internal/application/adapter"
	domainerror "github.com/smart-finance/backend/internal/domain/error"
)

// RefreshInput represents the input for refreshing a token pair.
type RefreshInput struct {
	RefreshToken string
}

// RefreshOutput represents the output of refreshing a token pair.
type RefreshOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshUseCase exchanges a valid refresh token for a new token pair.
type RefreshUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshUseCase creates a new RefreshUseCase instance.
func NewRefreshUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshUseCase {
	return &RefreshUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute validates the refresh token, rotates it and issues a fresh pair.
// A token for a deactivated or deleted user is rejected.
func (uc *RefreshUseCase) Execute(ctx context.Context, input RefreshInput) (*RefreshOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			err,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			err,
		)
	}
	if !user.IsActive {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountDeactivated,
			"account is deactivated",
			domainerror.ErrAccountDeactivated,
		)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshOutput{Tokens: tokens}, nil
}

// LogoutInput represents the input for logging out.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase invalidates the user's refresh token.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute invalidates the refresh token. Logging out with an already invalid
// token is not an error.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	return uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
}
