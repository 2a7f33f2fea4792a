// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// UserListResult represents a page of users for the admin panel.
type UserListResult struct {
	Users      []*entity.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether a user with the email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error

	// List returns a page of users, optionally filtered by a name/email search term.
	List(ctx context.Context, search string, page, limit int) (*UserListResult, error)

	// CountAll returns the total number of users.
	CountAll(ctx context.Context) (int64, error)
}
