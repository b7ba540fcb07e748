package model

import "time"

// RatingModel mirrors the 'ratings' table. The composite unique index on
// (store_id, user_id) backs the single-rating-per-pair invariant and the
// ON CONFLICT upsert.
type RatingModel struct {
	ID        uint64 `gorm:"primaryKey"`
	StoreID   uint64 `gorm:"not null;uniqueIndex:uniq_ratings_store_user"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uniq_ratings_store_user"`
	Rating    int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Store *StoreModel `gorm:"foreignKey:StoreID"`
	User  *UserModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
