// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity record of the system. A user is created via
// self-registration or by an administrator and is never deleted.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialized to clients.
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// UserDetails is a user enriched with the average rating across the
// stores they own. StoreRating is nil unless the user is a store owner
// with at least one rated store.
type UserDetails struct {
	User
	StoreRating *float64 `json:"storeRating"`
}
