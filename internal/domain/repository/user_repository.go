// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storerate/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserListFilter narrows and orders a user listing. Substring matches on
// name and email, equality on role. SortBy is resolved against a fixed
// allow-list by the implementation; unknown keys fall back to name.
type UserListFilter struct {
	Name      string
	Email     string
	Role      entity.Role
	SortBy    string
	SortOrder string
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash of a user.
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error

	// List returns the users matching the filter.
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
