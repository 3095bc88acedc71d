package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern is a deliberately loose email shape check. Real validation
// happens on the backend; this only catches obvious typos before a network
// round trip.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen is the minimum accepted password length
	MinPasswordLen = 8
	// MaxEmailLen is the maximum accepted email length
	MaxEmailLen = 254
)

// ValidateEmail checks that the email looks like an email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email address is malformed")
	}
	return nil
}

// ValidatePassword checks minimum password requirements
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
