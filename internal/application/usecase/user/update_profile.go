// Package user contains user profile use cases.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financas-pro/backend/internal/application/adapter"
	"github.com/financas-pro/backend/internal/domain/entity"
	domainerror "github.com/financas-pro/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	AvatarURL *string // nil keeps the current avatar
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile update. A nil AvatarURL leaves the stored
// avatar untouched; changing the email to one owned by another account
// fails with a conflict.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeEmptyName,
			"name must not be empty",
			domainerror.ErrEmptyName,
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

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != user.Email {
		exists, err := uc.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailInUse,
				"email already in use",
				domainerror.ErrEmailInUse,
			)
		}
	}

	user.Name = input.Name
	user.Email = email
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeEmailInUse,
				"email already in use",
				domainerror.ErrEmailInUse,
			)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
