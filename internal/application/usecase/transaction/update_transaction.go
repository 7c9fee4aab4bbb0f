// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. All
// value fields replace the stored ones.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
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

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update and returns the stored record.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionFields(input.Amount, input.Category, input.Type, input.PaymentMethod, input.Recurrence); err != nil {
		return nil, err
	}

	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedTransaction,
			"transaction does not belong to user",
			domainerror.ErrUnauthorizedTransactionAccess,
		)
	}

	existing.Amount = input.Amount
	existing.Date = input.Date
	existing.Category = strings.TrimSpace(input.Category)
	existing.Description = input.Description
	existing.Type = input.Type
	existing.PaymentMethod = input.PaymentMethod
	existing.Recurrence = input.Recurrence
	existing.Tags = input.Tags
	existing.UpdatedAt = time.Now().UTC()

	stored, err := uc.transactionRepo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: stored}, nil
}
