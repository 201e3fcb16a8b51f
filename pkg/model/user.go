package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `gorm:"uniqueIndex"`
	PasswordHash   string
	LanguagePrefID uint

	LanguagePref Language `gorm:"foreignKey:LanguagePrefID"`
	Bookmarks    []Drink  `gorm:"many2many:bookmarks;"`
}

// Session is the server-side record behind a client-held token. Deleting the
// row invalidates the token regardless of its remaining lifetime.
type Session struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex"`
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE;"`
}
