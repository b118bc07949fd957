package util

import (
	"fmt"
	"regexp"
	"strings"
)

// optional leading +, then 9 to 15 digits
var phoneRe = regexp.MustCompile(`^\+?\d{9,15}$`)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are always normalized before storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the basic user@host.tld shape.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// ValidatePhoneNumber checks the phone format.
func ValidatePhoneNumber(phone string) error {
	if !phoneRe.MatchString(phone) {
		return fmt.Errorf("phone number must start with optional '+' and contain 9-15 digits")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}
