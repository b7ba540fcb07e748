package impl

import (
	"context"
	"log/slog"

	deliverycontext "storerate/internal/delivery/context"
	"storerate/internal/domain/entity"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/repository"
	"storerate/internal/domain/service"
	"storerate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser creates a user with an explicit role. The duplicate-email
// rule is the same as self-registration.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (uint64, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return 0, domainerrors.NewValidationError([]string{"Role must be one of user, store_owner, admin"})
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return 0, domainerrors.ErrDuplicateEmail.WrapMessage("admin user creation with existing email")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return 0, errors.Wrap(err, "failed to check existing email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return 0, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password during admin user creation")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return 0, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created by admin",
		slog.Uint64("userID", newUser.ID),
		slog.String("role", role.String()),
	)

	return newUser.ID, nil
}

// ListUsers returns the users matching the filters.
func (srv *adminService) ListUsers(ctx context.Context, input *usecase.UserListInput) ([]*entity.User, error) {
	filter := repository.UserListFilter{
		Name:      input.Name,
		Email:     input.Email,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	}

	// An unknown role filter matches nothing rather than being spliced
	// into the query as-is.
	if input.Role != "" {
		role, ok := entity.ParseRole(input.Role)
		if !ok {
			return []*entity.User{}, nil
		}
		filter.Role = role
	}

	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetStats returns platform totals as three independent aggregate queries.
func (srv *adminService) GetStats(ctx context.Context) (*usecase.Stats, error) {
	userCount, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	storeCount, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	ratingCount, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &usecase.Stats{
		TotalUsers:   userCount,
		TotalStores:  storeCount,
		TotalRatings: ratingCount,
	}, nil
}

// GetUserDetails returns a single user, enriched with the average rating
// across the stores they own when they are a store owner.
func (srv *adminService) GetUserDetails(ctx context.Context, userID uint64) (*entity.UserDetails, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user details lookup")
		}

		return nil, errors.Wrap(err, "failed to load user details")
	}

	details := &entity.UserDetails{User: *user}

	if user.Role == entity.RoleStoreOwner {
		average, err := srv.storeRepo.OwnerAverageRating(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to compute owner average rating")
		}
		details.StoreRating = average
	}

	return details, nil
}

// CreateStore creates a store. A zero or absent owner reference is
// stored as NULL, not coerced to zero.
func (srv *adminService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (uint64, error) {
	ownerID := input.OwnerID
	if ownerID != nil && *ownerID == 0 {
		ownerID = nil
	}

	store := &entity.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: ownerID,
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		return 0, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Store created", slog.Uint64("storeID", store.ID))

	return store.ID, nil
}
