// Package user contains user profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

// SetCurrencyInput represents the input for a currency change.
type SetCurrencyInput struct {
	UserID   uuid.UUID
	Currency entity.Currency
}

// SetCurrencyOutput represents the output of a currency change.
type SetCurrencyOutput struct {
	User *entity.User
}

// SetCurrencyUseCase handles preferred currency updates.
type SetCurrencyUseCase struct {
	userRepo adapter.UserRepository
}

// NewSetCurrencyUseCase creates a new SetCurrencyUseCase instance.
func NewSetCurrencyUseCase(userRepo adapter.UserRepository) *SetCurrencyUseCase {
	return &SetCurrencyUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the currency update.
func (uc *SetCurrencyUseCase) Execute(ctx context.Context, input SetCurrencyInput) (*SetCurrencyOutput, error) {
	if !input.Currency.IsValid() {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be 'BRL', 'USD', or 'EUR'",
			domainerror.ErrInvalidCurrency,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeProfileUserNotFound,
				"user not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Currency = input.Currency
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}

	return &SetCurrencyOutput{User: user}, nil
}
