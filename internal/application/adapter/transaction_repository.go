// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create inserts a new transaction and returns the stored record.
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUserID retrieves all transactions for a user, date descending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction and returns the stored record.
	Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
