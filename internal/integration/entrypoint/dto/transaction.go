package dto

import (
	"time"

	"github.com/smart-finance/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string  `json:"type" binding:"required,oneof=expense income"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required,min=1,max=100"`
	Description   string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date          string  `json:"date" binding:"required"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash card bank-transfer digital-wallet other"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category      *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date          *string  `json:"date,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty" binding:"omitempty,oneof=cash card bank-transfer digital-wallet other"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Type          string    `json:"type"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransactionListResponse represents a paginated transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// TransactionResponseFromEntity converts a transaction entity to its API representation.
func TransactionResponseFromEntity(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		UserID:        t.UserID.String(),
		Type:          string(t.Type),
		Amount:        t.Amount.String(),
		Category:      t.Category,
		Description:   t.Description,
		Date:          t.Date.Format("2006-01-02"),
		PaymentMethod: string(t.PaymentMethod),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// TransactionListResponseFromResult converts a listing result to its API representation.
func TransactionListResponseFromResult(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, t := range result.Transactions {
		transactions[i] = TransactionResponseFromEntity(t)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}
