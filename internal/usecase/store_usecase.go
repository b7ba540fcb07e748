package usecase

import (
	"context"

	"storerate/internal/domain/entity"
)

// StoreListInput carries the optional filters and sorting of a store listing.
type StoreListInput struct {
	Name      string
	Address   string
	SortBy    string
	SortOrder string
}

// StoreWithViewerRating is a store with aggregates plus the requesting
// user's own rating for it (nil when the viewer has not rated it).
type StoreWithViewerRating struct {
	entity.StoreWithStats
	UserRating *int `json:"userRating"`
}

// StoreUsecase defines the interface for store browsing and rating operations.
type StoreUsecase interface {
	// ListStores returns stores with their rating aggregates.
	ListStores(ctx context.Context, input *StoreListInput) ([]*entity.StoreWithStats, error)

	// ListStoresWithViewerRating additionally looks up the viewer's own
	// rating on each store.
	ListStoresWithViewerRating(ctx context.Context, viewerID uint64, input *StoreListInput) ([]*StoreWithViewerRating, error)

	// SubmitRating upserts the (store, user) rating row. Resubmission
	// updates the value rather than adding a row.
	SubmitRating(ctx context.Context, userID, storeID uint64, rating int) error

	// ListStoreRatings returns a store's ratings with rater identities,
	// newest first.
	ListStoreRatings(ctx context.Context, storeID uint64) ([]*entity.StoreRatingEntry, error)
}
