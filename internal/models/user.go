package models

import "time"

// User represents an account holder. Email is stored lower-cased so the
// unique index doubles as a case-insensitive uniqueness guarantee.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	PhoneNumber  string `gorm:"size:15;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	IsActive     bool   `gorm:"default:true;not null"`
	IsStaff      bool   `gorm:"default:false;not null"`
	IsSuperuser  bool   `gorm:"default:false;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
