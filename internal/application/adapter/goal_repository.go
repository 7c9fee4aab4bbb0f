// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create inserts a new goal and returns the stored record.
	Create(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a user, target date ascending.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal and returns the stored record.
	Update(ctx context.Context, goal *entity.Goal) (*entity.Goal, error)

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddProgress atomically increments the stored current amount by the
	// given amount and returns the new stored record. The increment happens
	// in a single UPDATE at the storage layer so concurrent contributions
	// cannot lose updates.
	AddProgress(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*entity.Goal, error)
}
