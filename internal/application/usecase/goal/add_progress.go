// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

// AddProgressInput represents the input for a goal progress contribution.
type AddProgressInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// AddProgressOutput represents the output of a goal progress contribution.
type AddProgressOutput struct {
	Goal *entity.Goal
}

// AddProgressUseCase handles goal progress contributions. The stored amount
// is incremented atomically at the storage layer, so two concurrent
// contributions of a and b always end at original + a + b.
type AddProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewAddProgressUseCase creates a new AddProgressUseCase instance.
func NewAddProgressUseCase(goalRepo adapter.GoalRepository) *AddProgressUseCase {
	return &AddProgressUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the contribution and returns the new stored record. The
// stored current amount may exceed the target; display clamping is the
// caller's concern via Goal.DisplayAmount.
func (uc *AddProgressUseCase) Execute(ctx context.Context, input AddProgressInput) (*AddProgressOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidProgressAmount,
			"progress amount must be positive",
			domainerror.ErrInvalidProgressAmount,
		)
	}

	existing, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoal,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	stored, err := uc.goalRepo.AddProgress(ctx, input.GoalID, input.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to add progress: %w", err)
	}

	return &AddProgressOutput{Goal: stored}, nil
}
