package model

import "time"

// Bookmark is a hard-deleted join row; existence means "this user bookmarked
// this drink". The composite key makes duplicate adds a conflict rather than
// a second row.
type Bookmark struct {
	UserID    uint `gorm:"primaryKey"`
	DrinkID   uint `gorm:"primaryKey"`
	CreatedAt time.Time

	User  User  `gorm:"constraint:OnDelete:CASCADE;"`
	Drink Drink `gorm:"constraint:OnDelete:CASCADE;"`
}
