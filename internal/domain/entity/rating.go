package entity

import "time"

// Rating is one user's 1-5 verdict on one store. The (StoreID, UserID)
// pair is unique; resubmitting replaces the stored value.
type Rating struct {
	ID        uint64    `json:"id"`
	StoreID   uint64    `json:"storeId"`
	UserID    uint64    `json:"userId"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreRatingEntry is a rating joined with the rater's public identity,
// as shown on a store's rating list.
type StoreRatingEntry struct {
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
