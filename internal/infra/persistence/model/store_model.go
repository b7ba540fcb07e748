package model

import "time"

// StoreModel mirrors the 'stores' table. OwnerID is nullable so a store
// without an assigned owner stores NULL, never zero.
type StoreModel struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(60);not null"`
	Email     string  `gorm:"type:varchar(255);unique;not null"`
	Address   string  `gorm:"type:varchar(400)"`
	OwnerID   *uint64 `gorm:"index"`
	CreatedAt time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
