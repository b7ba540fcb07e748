package usecase

import (
	"context"

	"storerate/internal/domain/entity"
)

// CreateUserInput defines the data an admin supplies to create a user.
// Role may name any of the known roles; empty defaults to 'user'.
type CreateUserInput struct {
	Name     string `json:"name" validate:"user_name"`
	Email    string `json:"email" validate:"email_format"`
	Password string `json:"password" validate:"password_policy"`
	Address  string `json:"address" validate:"postal_address"`
	Role     string `json:"role"`
}

// CreateStoreInput defines the data an admin supplies to create a store.
// An absent owner is persisted as NULL.
type CreateStoreInput struct {
	Name    string  `json:"name" validate:"store_name"`
	Email   string  `json:"email" validate:"email_format"`
	Address string  `json:"address" validate:"postal_address"`
	OwnerID *uint64 `json:"owner_id"`
}

// UserListInput carries the optional filters and sorting of a user listing.
type UserListInput struct {
	Name      string
	Email     string
	Role      string
	SortBy    string
	SortOrder string
}

// Stats aggregates the platform-wide totals shown on the admin dashboard.
type Stats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// AdminUsecase defines the interface for administrator-only operations.
type AdminUsecase interface {
	// CreateUser creates a user with an explicit role and returns the new ID.
	CreateUser(ctx context.Context, input *CreateUserInput) (uint64, error)

	// ListUsers returns the users matching the filters.
	ListUsers(ctx context.Context, input *UserListInput) ([]*entity.User, error)

	// GetStats returns total counts of users, stores and ratings.
	GetStats(ctx context.Context) (*Stats, error)

	// GetUserDetails returns a single user, enriched with the average
	// rating of their stores when they are a store owner.
	GetUserDetails(ctx context.Context, userID uint64) (*entity.UserDetails, error)

	// CreateStore creates a store and returns the new ID.
	CreateStore(ctx context.Context, input *CreateStoreInput) (uint64, error)
}
