// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Category      string
	Description   string
	Type          entity.TransactionType
	PaymentMethod entity.PaymentMethod
	Recurrence    entity.Recurrence
	Tags          []string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation and returns the stored record
// with its server-assigned fields.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Amount, input.Category, input.Type, input.PaymentMethod, input.Recurrence); err != nil {
		return nil, err
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.Amount,
		input.Date,
		strings.TrimSpace(input.Category),
		input.Description,
		input.Type,
		input.PaymentMethod,
		input.Recurrence,
		input.Tags,
	)

	stored, err := uc.transactionRepo.Create(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: stored}, nil
}

// validateTransactionFields enforces the transaction field invariants shared
// by create and update.
func validateTransactionFields(
	amount decimal.Decimal,
	category string,
	transactionType entity.TransactionType,
	paymentMethod entity.PaymentMethod,
	recurrence entity.Recurrence,
) error {
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCategory,
			"category must not be empty",
			domainerror.ErrEmptyCategory,
		)
	}
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !paymentMethod.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"unknown payment method",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	if !recurrence.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecurrence,
			"recurrence must be 'none', 'weekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidRecurrence,
		)
	}
	return nil
}
