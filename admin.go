package main

import (
	"fmt"

	"github.com/yethan4/shop-backend/internal/models"
	"github.com/yethan4/shop-backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// provisionAdmin validates the identity fields the same way registration
// does, hashes the password and inserts the superuser row.
func provisionAdmin(db *gorm.DB, user *models.User, password string, bcryptCost int) error {
	switch {
	case user.Username == "":
		return fmt.Errorf("username is required")
	case user.Email == "":
		return fmt.Errorf("email is required")
	case user.FirstName == "":
		return fmt.Errorf("first name is required")
	case user.LastName == "":
		return fmt.Errorf("last name is required")
	}
	if err := util.ValidatePhoneNumber(user.PhoneNumber); err != nil {
		return err
	}
	if err := util.ValidatePassword(password); err != nil {
		return err
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
