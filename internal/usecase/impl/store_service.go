package impl

import (
	"context"
	"log/slog"

	deliverycontext "storerate/internal/delivery/context"
	"storerate/internal/domain/entity"
	"storerate/internal/domain/repository"
	"storerate/internal/domain/validation"
	"storerate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storeService implements the StoreUsecase interface.
type storeService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores returns stores with their rating aggregates.
func (srv *storeService) ListStores(ctx context.Context, input *usecase.StoreListInput) ([]*entity.StoreWithStats, error) {
	stores, err := srv.storeRepo.ListWithStats(ctx, repository.StoreListFilter{
		Name:      input.Name,
		Address:   input.Address,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// ListStoresWithViewerRating lists stores and, for each, looks up the
// viewer's own rating. The per-store lookup keeps reads simple at this
// scale.
func (srv *storeService) ListStoresWithViewerRating(ctx context.Context, viewerID uint64, input *usecase.StoreListInput) ([]*usecase.StoreWithViewerRating, error) {
	stores, err := srv.storeRepo.ListWithStats(ctx, repository.StoreListFilter{
		Name:    input.Name,
		Address: input.Address,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	result := make([]*usecase.StoreWithViewerRating, 0, len(stores))
	for _, store := range stores {
		entry := &usecase.StoreWithViewerRating{StoreWithStats: *store}

		rating, err := srv.ratingRepo.FindByStoreAndUser(ctx, store.ID, viewerID)
		switch {
		case err == nil:
			value := rating.Rating
			entry.UserRating = &value
		case errors.Is(err, repository.ErrRatingNotFound):
			// Viewer has not rated this store.
		default:
			return nil, errors.Wrap(err, "failed to look up viewer rating")
		}

		result = append(result, entry)
	}

	return result, nil
}

// SubmitRating validates the value and upserts the (store, user) row.
func (srv *storeService) SubmitRating(ctx context.Context, userID, storeID uint64, rating int) error {
	if err := validation.ValidateRating(rating); err != nil {
		return err
	}

	if err := srv.ratingRepo.Upsert(ctx, &entity.Rating{
		StoreID: storeID,
		UserID:  userID,
		Rating:  rating,
	}); err != nil {
		return errors.Wrap(err, "failed to submit rating")
	}

	srv.log(ctx).Debug("Rating submitted",
		slog.Uint64("userID", userID),
		slog.Uint64("storeID", storeID),
		slog.Int("rating", rating),
	)

	return nil
}

// ListStoreRatings returns a store's ratings with rater identities.
func (srv *storeService) ListStoreRatings(ctx context.Context, storeID uint64) ([]*entity.StoreRatingEntry, error) {
	ratings, err := srv.ratingRepo.ListForStore(ctx, storeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store ratings")
	}

	return ratings, nil
}
