package repository

import (
	"context"
	"errors"

	"storerate/internal/domain/entity"
)

// ErrStoreNotFound is a domain-specific error returned when a store is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreListFilter narrows and orders a store listing. Name and address
// are case-insensitive substring matches. SortBy is resolved against a
// fixed allow-list by the implementation; the default order is name
// ascending.
type StoreListFilter struct {
	Name      string
	Address   string
	SortBy    string
	SortOrder string
}

// StoreRepository defines the standard operations for store persistence.
type StoreRepository interface {
	// Create persists a new store and fills in the generated ID. An
	// absent owner is stored as NULL, never coerced to zero.
	Create(ctx context.Context, store *entity.Store) error

	// ListWithStats returns the stores matching the filter, each joined
	// with its average rating and rating count.
	ListWithStats(ctx context.Context, filter StoreListFilter) ([]*entity.StoreWithStats, error)

	// OwnerAverageRating computes the average rating across every store
	// owned by the given user. Returns nil when no rating exists.
	OwnerAverageRating(ctx context.Context, ownerID uint64) (*float64, error)

	// Count returns the total number of stores.
	Count(ctx context.Context) (int64, error)
}
