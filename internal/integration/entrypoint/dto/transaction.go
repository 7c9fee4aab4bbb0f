package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for creating or updating a transaction.
type TransactionRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Category      string          `json:"category" binding:"required,min=1,max=100"`
	Description   string          `json:"description" binding:"max=255"`
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=credit_card debit_card bank_transfer pix cash"`
	Recurrence    string          `json:"recurrence" binding:"omitempty,oneof=none weekly monthly yearly"`
	Tags          []string        `json:"tags"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"payment_method"`
	Recurrence    string          `json:"recurrence"`
	Tags          []string        `json:"tags"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TransactionListResponse represents the list of transactions in API responses.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            transaction.ID.String(),
		Amount:        transaction.Amount,
		Date:          transaction.Date,
		Category:      transaction.Category,
		Description:   transaction.Description,
		Type:          string(transaction.Type),
		PaymentMethod: string(transaction.PaymentMethod),
		Recurrence:    string(transaction.Recurrence),
		Tags:          transaction.Tags,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to the list response DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		items = append(items, ToTransactionResponse(transaction))
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        len(items),
	}
}
