package impl

import (
	"context"
	"testing"
	"time"

	"storerate/internal/domain/entity"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/repository"
	mockRepo "storerate/internal/mocks/repository"
	"storerate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeServiceFixtures holds all test dependencies for store service tests.
type storeServiceFixtures struct {
	service    usecase.StoreUsecase
	storeRepo  *mockRepo.MockStoreRepository
	ratingRepo *mockRepo.MockRatingRepository
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	storeRepo := mockRepo.NewMockStoreRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)

	service := NewStoreService(StoreServiceParams{
		StoreRepo:  storeRepo,
		RatingRepo: ratingRepo,
		Logger:     newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:    service,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

func TestStoreService_ListStores_PassesFilterThrough(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stores := []*entity.StoreWithStats{
		{Store: entity.Store{ID: 1, Name: "Corner Shop"}, AverageRating: float64Ptr(4.5), RatingCount: 2},
	}

	fx.storeRepo.EXPECT().
		ListWithStats(ctx, repository.StoreListFilter{
			Name:      "corner",
			Address:   "main",
			SortBy:    "average_rating",
			SortOrder: "desc",
		}).
		Return(stores, nil)

	got, err := fx.service.ListStores(ctx, &usecase.StoreListInput{
		Name:      "corner",
		Address:   "main",
		SortBy:    "average_rating",
		SortOrder: "desc",
	})

	require.NoError(t, err)
	assert.Equal(t, stores, got)
}

func TestStoreService_ListStoresWithViewerRating(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	stores := []*entity.StoreWithStats{
		{Store: entity.Store{ID: 1, Name: "Rated"}},
		{Store: entity.Store{ID: 2, Name: "Unrated"}},
	}

	fx.storeRepo.EXPECT().
		ListWithStats(ctx, repository.StoreListFilter{}).
		Return(stores, nil)

	fx.ratingRepo.EXPECT().
		FindByStoreAndUser(ctx, uint64(1), uint64(9)).
		Return(&entity.Rating{StoreID: 1, UserID: 9, Rating: 4}, nil)
	fx.ratingRepo.EXPECT().
		FindByStoreAndUser(ctx, uint64(2), uint64(9)).
		Return(nil, repository.ErrRatingNotFound)

	got, err := fx.service.ListStoresWithViewerRating(ctx, 9, &usecase.StoreListInput{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].UserRating)
	assert.Equal(t, 4, *got[0].UserRating)
	assert.Nil(t, got[1].UserRating)
}

func TestStoreService_ListStoresWithViewerRating_LookupFailure(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	fx.storeRepo.EXPECT().
		ListWithStats(ctx, repository.StoreListFilter{}).
		Return([]*entity.StoreWithStats{{Store: entity.Store{ID: 1}}}, nil)
	fx.ratingRepo.EXPECT().
		FindByStoreAndUser(ctx, uint64(1), uint64(9)).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.ListStoresWithViewerRating(ctx, 9, &usecase.StoreListInput{})

	assert.Error(t, err)
}

func TestStoreService_SubmitRating_Success(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	fx.ratingRepo.EXPECT().
		Upsert(ctx, &entity.Rating{StoreID: 2, UserID: 9, Rating: 5}).
		Return(nil)

	err := fx.service.SubmitRating(ctx, 9, 2, 5)

	assert.NoError(t, err)
}

func TestStoreService_SubmitRating_RejectsOutOfRange(t *testing.T) {
	fx := createTestStoreService(t)

	// Out-of-range values never reach the repository.
	for _, rating := range []int{0, 6} {
		err := fx.service.SubmitRating(context.Background(), 9, 2, rating)

		var validationErr *domainerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"Rating must be between 1 and 5"}, validationErr.Messages())
	}
}

func TestStoreService_SubmitRating_UnknownStore(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	fx.ratingRepo.EXPECT().
		Upsert(ctx, &entity.Rating{StoreID: 404, UserID: 9, Rating: 3}).
		Return(repository.ErrStoreNotFound)

	err := fx.service.SubmitRating(ctx, 9, 404, 3)

	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreService_ListStoreRatings(t *testing.T) {
	fx := createTestStoreService(t)

	ctx := context.Background()
	ratings := []*entity.StoreRatingEntry{
		{UserName: "Christopher Alexander Smith", UserEmail: "chris@example.com", Rating: 5, CreatedAt: time.Now()},
	}

	fx.ratingRepo.EXPECT().ListForStore(ctx, uint64(2)).Return(ratings, nil)

	got, err := fx.service.ListStoreRatings(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, ratings, got)
}
