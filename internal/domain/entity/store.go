package entity

import "time"

// Store is a ratable business listed on the platform. OwnerID references
// the owning user when one exists; a store without an owner keeps it nil.
type Store struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *uint64   `json:"ownerId"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreWithStats is a store joined with its rating aggregates, computed
// on read. AverageRating is nil for a store with no ratings.
type StoreWithStats struct {
	Store
	AverageRating *float64 `json:"averageRating"`
	RatingCount   int64    `json:"ratingCount"`
}
