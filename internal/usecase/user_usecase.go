// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storerate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `json:"name" validate:"user_name"`
	Email    string `json:"email" validate:"email_format"`
	Password string `json:"password" validate:"password_policy"`
	Address  string `json:"address" validate:"postal_address"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordInput defines the data required to change a password.
type UpdatePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"password_policy"`
}

// --- Output DTOs ---

// AuthOutput returns the issued session token together with the public
// user fields. The password hash is never part of it.
type AuthOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UserUsecase defines the interface for authentication and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a user with the 'user' role and issues a token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown emails and
	// wrong passwords both fail with the same generic error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the user record for an authenticated identity.
	GetProfile(ctx context.Context, userID uint64) (*entity.User, error)

	// UpdatePassword re-verifies the current password before replacing it.
	UpdatePassword(ctx context.Context, userID uint64, input *UpdatePasswordInput) error
}
