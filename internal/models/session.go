package models

import "time"

// RefreshSession tracks an issued refresh token by its jti claim
// (a UUID), so refresh tokens can be revoked and checked server-side.
type RefreshSession struct {
	ID        string    `gorm:"primaryKey;size:64"` // refresh token jti (UUID)
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Revoked   bool      `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
