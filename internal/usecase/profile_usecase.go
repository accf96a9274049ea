package usecase

import (
	"context"

	"dhansaathi/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for operations on authenticated accounts.
// Every method takes the user id resolved from a verified bearer token.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a user profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ChangePasswordInput defines the data required to change the account password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=1"`
}
