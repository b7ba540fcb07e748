// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(60);not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Address      string `gorm:"type:varchar(400)"`
	Role         string `gorm:"type:varchar(20);not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
