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
	"gorm.io/gorm/clause"
)

// ratingRepository implements the domain's RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or, when the (store, user) pair already has
// one, overwrites the stored value. ON CONFLICT keeps the operation a
// single atomic statement, so concurrent submissions from the same user
// are last-writer-wins and never produce a second row.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{
		StoreID: rating.StoreID,
		UserID:  rating.UserID,
		Rating:  rating.Rating,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     ratingM.Rating,
				"updated_at": time.Now(),
			}),
		}).
		Create(ratingM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStoreNotFound.WrapMessage("rated store does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to submit rating")
	}

	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// FindByStoreAndUser retrieves the rating a user gave a store.
func (repo *ratingRepository) FindByStoreAndUser(ctx context.Context, storeID, userID uint64) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("store_id = ? AND user_id = ?", storeID, userID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return &entity.Rating{
		StoreID:   ratingM.StoreID,
		UserID:    ratingM.UserID,
		Rating:    ratingM.Rating,
		CreatedAt: ratingM.CreatedAt,
	}, nil
}

// ListForStore returns a store's ratings joined with the rater's public
// identity, newest first.
func (repo *ratingRepository) ListForStore(ctx context.Context, storeID uint64) ([]*entity.StoreRatingEntry, error) {
	var rows []struct {
		UserName  string
		UserEmail string
		Rating    int
		CreatedAt time.Time
	}
	err := repo.db.WithContext(ctx).
		Table("ratings AS r").
		Select("u.name AS user_name, u.email AS user_email, r.rating, r.created_at").
		Joins("JOIN users AS u ON u.id = r.user_id").
		Where("r.store_id = ?", storeID).
		Order("r.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store ratings")
	}

	ratings := make([]*entity.StoreRatingEntry, 0, len(rows))
	for _, row := range rows {
		ratings = append(ratings, &entity.StoreRatingEntry{
			UserName:  row.UserName,
			UserEmail: row.UserEmail,
			Rating:    row.Rating,
			CreatedAt: row.CreatedAt,
		})
	}

	return ratings, nil
}

// Count returns the total number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}
