package models

import "time"

// Address is a delivery/billing address owned by exactly one user.
// The composite unique index makes get-or-create atomic: a concurrent
// duplicate insert fails at the database instead of creating a second row.
type Address struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"uniqueIndex:idx_addresses_dedup;not null"`
	Street  string `gorm:"size:255;uniqueIndex:idx_addresses_dedup;not null"`
	City    string `gorm:"size:100;uniqueIndex:idx_addresses_dedup;not null"`
	ZipCode string `gorm:"size:20;uniqueIndex:idx_addresses_dedup;not null"`
	Country string `gorm:"size:100;uniqueIndex:idx_addresses_dedup;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
