// Package admin contains administration use cases: user management, platform
// overview and tip curation.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// ListUsersInput represents the input for the admin user listing.
type ListUsersInput struct {
	Search string
	Page   int
	Limit  int
}

// ListUsersOutput represents the output of the admin user listing.
type ListUsersOutput struct {
	Result *adapter.UserListResult
}

// ListUsersUseCase handles the admin user listing.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns a page of users, optionally filtered by a search term
// matched against name and email.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := uc.userRepo.List(ctx, strings.TrimSpace(input.Search), page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{Result: result}, nil
}

// SetUserStatusInput represents the input for activating or deactivating a user.
type SetUserStatusInput struct {
	UserID   uuid.UUID
	IsActive bool
}

// SetUserStatusOutput represents the output of a user status change.
type SetUserStatusOutput struct {
	User *entity.User
}

// SetUserStatusUseCase handles activating and deactivating user accounts.
type SetUserStatusUseCase struct {
	userRepo adapter.UserRepository
}

// NewSetUserStatusUseCase creates a new SetUserStatusUseCase instance.
func NewSetUserStatusUseCase(userRepo adapter.UserRepository) *SetUserStatusUseCase {
	return &SetUserStatusUseCase{
		userRepo: userRepo,
	}
}

// Execute flips the user's active flag. Deactivation takes effect on the next
// login or token refresh; issued access tokens run out on their own.
func (uc *SetUserStatusUseCase) Execute(ctx context.Context, input SetUserStatusInput) (*SetUserStatusOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.IsActive = input.IsActive
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return &SetUserStatusOutput{User: user}, nil
}
