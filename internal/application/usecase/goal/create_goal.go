// Package goal contains goal-related use cases.
package goal

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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation and returns the stored record.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if err := validateGoalFields(input.Name, input.TargetAmount, input.CurrentAmount); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		strings.TrimSpace(input.Name),
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
	)

	stored, err := uc.goalRepo.Create(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: stored}, nil
}

// validateGoalFields enforces the goal field invariants shared by create
// and update.
func validateGoalFields(name string, targetAmount, currentAmount decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalName,
			"goal name must not be empty",
			domainerror.ErrEmptyGoalName,
		)
	}
	if !targetAmount.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if currentAmount.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}
	return nil
}
