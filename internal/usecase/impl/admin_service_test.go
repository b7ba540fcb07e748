package impl

import (
	"context"
	"testing"

	"storerate/internal/domain/entity"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/repository"
	mockRepo "storerate/internal/mocks/repository"
	mockSvc "storerate/internal/mocks/service"
	"storerate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service    usecase.AdminUsecase
	userRepo   *mockRepo.MockUserRepository
	storeRepo  *mockRepo.MockStoreRepository
	ratingRepo *mockRepo.MockRatingRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAdminService(AdminServiceParams{
		UserRepo:   userRepo,
		StoreRepo:  storeRepo,
		RatingRepo: ratingRepo,
		Hasher:     hasher,
		Logger:     newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
		hasher:     hasher,
	}
}

func TestAdminService_CreateUser_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Christopher Alexander Smith",
		Email:    "owner@example.com",
		Password: "Password1!",
		Address:  "123 Main Street",
		Role:     "store_owner",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleStoreOwner, user.Role)
			user.ID = 11
		}).
		Return(nil)

	userID, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint64(11), userID)
}

func TestAdminService_CreateUser_EmptyRoleDefaultsToUser(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:     "Christopher Alexander Smith",
		Email:    "plain@example.com",
		Password: "Password1!",
		Address:  "123 Main Street",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleUser, user.Role)
		}).
		Return(nil)

	_, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
}

func TestAdminService_CreateUser_UnknownRole(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{
		Name:     "Christopher Alexander Smith",
		Email:    "owner@example.com",
		Password: "Password1!",
		Address:  "123 Main Street",
		Role:     "superuser",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Role must be one of user, store_owner, admin"}, validationErr.Messages())
}

func TestAdminService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: 1}, nil)

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Name:     "Christopher Alexander Smith",
		Email:    "taken@example.com",
		Password: "Password1!",
		Address:  "123 Main Street",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "User already exists with this email", appErr.Message())
}

func TestAdminService_ListUsers_RoleFilter(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: 1, Role: entity.RoleAdmin}}

	fx.userRepo.EXPECT().
		List(ctx, repository.UserListFilter{Role: entity.RoleAdmin}).
		Return(users, nil)

	got, err := fx.service.ListUsers(ctx, &usecase.UserListInput{Role: "admin"})

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAdminService_ListUsers_UnknownRoleMatchesNothing(t *testing.T) {
	fx := createTestAdminService(t)

	got, err := fx.service.ListUsers(context.Background(), &usecase.UserListInput{Role: "superuser"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAdminService_GetStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().Count(ctx).Return(int64(10), nil)
	fx.storeRepo.EXPECT().Count(ctx).Return(int64(4), nil)
	fx.ratingRepo.EXPECT().Count(ctx).Return(int64(25), nil)

	stats, err := fx.service.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &usecase.Stats{TotalUsers: 10, TotalStores: 4, TotalRatings: 25}, stats)
}

func TestAdminService_GetUserDetails_StoreOwnerIncludesAverage(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	owner := &entity.User{ID: 7, Role: entity.RoleStoreOwner}

	fx.userRepo.EXPECT().FindByID(ctx, uint64(7)).Return(owner, nil)
	fx.storeRepo.EXPECT().OwnerAverageRating(ctx, uint64(7)).Return(float64Ptr(4.2), nil)

	details, err := fx.service.GetUserDetails(ctx, 7)

	require.NoError(t, err)
	require.NotNil(t, details.StoreRating)
	assert.InDelta(t, 4.2, *details.StoreRating, 0.0001)
}

func TestAdminService_GetUserDetails_RegularUserSkipsAverage(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByID(ctx, uint64(8)).
		Return(&entity.User{ID: 8, Role: entity.RoleUser}, nil)

	details, err := fx.service.GetUserDetails(ctx, 8)

	require.NoError(t, err)
	assert.Nil(t, details.StoreRating)
}

func TestAdminService_GetUserDetails_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, uint64(404)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUserDetails(ctx, 404)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestAdminService_CreateStore_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	ownerID := uint64(7)

	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(ctx context.Context, store *entity.Store) {
			require.NotNil(t, store.OwnerID)
			assert.Equal(t, uint64(7), *store.OwnerID)
			store.ID = 3
		}).
		Return(nil)

	storeID, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Corner Shop",
		Email:   "shop@example.com",
		Address: "456 Side Street",
		OwnerID: &ownerID,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(3), storeID)
}

func TestAdminService_CreateStore_ZeroOwnerBecomesNull(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	zero := uint64(0)

	fx.storeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(ctx context.Context, store *entity.Store) {
			assert.Nil(t, store.OwnerID)
		}).
		Return(nil)

	_, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		Name:    "Corner Shop",
		Email:   "shop@example.com",
		Address: "456 Side Street",
		OwnerID: &zero,
	})

	require.NoError(t, err)
}
