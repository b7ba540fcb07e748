package postgres

import (
	"context"
	"time"

	"storerate/internal/domain/entity"
	domainerrors "storerate/internal/domain/errors"
	"storerate/internal/domain/repository"
	"storerate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain's StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// storeStatsRow is the scan target for the stores/ratings aggregate join.
type storeStatsRow struct {
	ID            uint64
	Name          string
	Email         string
	Address       string
	OwnerID       *uint64
	CreatedAt     time.Time
	AverageRating *float64
	RatingCount   int64
}

// Create persists a new store. A nil OwnerID is stored as NULL.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := &model.StoreModel{
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
		OwnerID: store.OwnerID,
	}

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateStoreEmail.WrapMessage("store email already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidOwner.WrapMessage("owner reference does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt

	return nil
}

// ListWithStats returns the stores matching the filter, each joined with
// its average rating and rating count computed on read.
func (repo *storeRepository) ListWithStats(ctx context.Context, filter repository.StoreListFilter) ([]*entity.StoreWithStats, error) {
	query := repo.db.WithContext(ctx).
		Table("stores AS s").
		Select("s.id, s.name, s.email, s.address, s.owner_id, s.created_at, AVG(r.rating) AS average_rating, COUNT(r.rating) AS rating_count").
		Joins("LEFT JOIN ratings AS r ON r.store_id = s.id")

	if filter.Name != "" {
		query = query.Where("s.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Address != "" {
		query = query.Where("s.address ILIKE ?", "%"+filter.Address+"%")
	}

	var rows []storeStatsRow
	if err := query.
		Group("s.id").
		Order(orderClause(storeSortColumns, filter.SortBy, filter.SortOrder, "s.name")).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.StoreWithStats, 0, len(rows))
	for i := range rows {
		stores = append(stores, toStoreWithStatsDomain(&rows[i]))
	}

	return stores, nil
}

// OwnerAverageRating computes the average rating across every store
// owned by the given user. Returns nil when no rating exists.
func (repo *storeRepository) OwnerAverageRating(ctx context.Context, ownerID uint64) (*float64, error) {
	var row struct {
		AverageRating *float64
	}
	if err := repo.db.WithContext(ctx).
		Table("stores AS s").
		Select("AVG(r.rating) AS average_rating").
		Joins("LEFT JOIN ratings AS r ON r.store_id = s.id").
		Where("s.owner_id = ?", ownerID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute owner average rating")
	}

	return row.AverageRating, nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// toStoreWithStatsDomain converts an aggregate row to a domain StoreWithStats.
func toStoreWithStatsDomain(row *storeStatsRow) *entity.StoreWithStats {
	return &entity.StoreWithStats{
		Store: entity.Store{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Address:   row.Address,
			OwnerID:   row.OwnerID,
			CreatedAt: row.CreatedAt,
		},
		AverageRating: row.AverageRating,
		RatingCount:   row.RatingCount,
	}
}
