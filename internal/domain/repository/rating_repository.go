package repository

import (
	"context"
	"errors"

	"storerate/internal/domain/entity"
)

// ErrRatingNotFound is a domain-specific error returned when a user has
// not rated a given store.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// Upsert inserts the rating, or overwrites the stored value if the
	// (store, user) pair already has one. The operation is a single
	// atomic statement, so concurrent submissions are last-writer-wins.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// FindByStoreAndUser retrieves the rating a user gave a store.
	// Returns ErrRatingNotFound when the pair has no rating.
	FindByStoreAndUser(ctx context.Context, storeID, userID uint64) (*entity.Rating, error)

	// ListForStore returns a store's ratings joined with the rater's
	// name and email, newest first.
	ListForStore(ctx context.Context, storeID uint64) ([]*entity.StoreRatingEntry, error)

	// Count returns the total number of ratings.
	Count(ctx context.Context) (int64, error)
}
