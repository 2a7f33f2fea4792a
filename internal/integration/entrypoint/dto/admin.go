package dto

import (
	"time"

	"github.com/smart-finance/backend/internal/application/adapter"
	"github.com/smart-finance/backend/internal/domain/entity"
)

// UserListResponse represents a page of users for the admin panel.
type UserListResponse struct {
	Users      []UserResponse     `json:"users"`
	Pagination PaginationResponse `json:"pagination"`
}

// SetUserStatusRequest represents the request body for activating or
// deactivating a user account.
type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PlatformOverviewResponse represents platform-wide aggregates for the admin panel.
type PlatformOverviewResponse struct {
	TotalUsers        int64          `json:"total_users"`
	TotalTransactions int64          `json:"total_transactions"`
	Volume            TotalsResponse `json:"volume"`
}

// CreateTipRequest represents the request body for tip creation.
type CreateTipRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=150"`
	Content  string   `json:"content" binding:"required,min=1"`
	Category string   `json:"category,omitempty" binding:"omitempty,max=100"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdateTipRequest represents the request body for tip update.
type UpdateTipRequest struct {
	Title    *string   `json:"title,omitempty" binding:"omitempty,min=1,max=150"`
	Content  *string   `json:"content,omitempty" binding:"omitempty,min=1"`
	Category *string   `json:"category,omitempty" binding:"omitempty,max=100"`
	Tags     *[]string `json:"tags,omitempty"`
	IsActive *bool     `json:"is_active,omitempty"`
}

// TipResponse represents a tip in API responses.
type TipResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	IsActive  bool      `json:"is_active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TipListResponse represents the response body for tip listing.
type TipListResponse struct {
	Tips []TipResponse `json:"tips"`
}

// UserListResponseFromResult converts a user listing result to its API representation.
func UserListResponseFromResult(result *adapter.UserListResult) UserListResponse {
	users := make([]UserResponse, len(result.Users))
	for i, u := range result.Users {
		users[i] = UserResponseFromEntity(u)
	}

	return UserListResponse{
		Users: users,
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}

// TipResponseFromEntity converts a tip entity to its API representation.
func TipResponseFromEntity(tip *entity.Tip) TipResponse {
	return TipResponse{
		ID:        tip.ID.String(),
		Title:     tip.Title,
		Content:   tip.Content,
		Category:  tip.Category,
		Tags:      tip.Tags,
		IsActive:  tip.IsActive,
		CreatedBy: tip.CreatedBy.String(),
		CreatedAt: tip.CreatedAt,
		UpdatedAt: tip.UpdatedAt,
	}
}
