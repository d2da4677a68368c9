// Package validation holds input checks applied before requests leave
// the client. The backend re-validates everything; these exist to fail
// fast with a readable message.
package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern is deliberately loose: local@domain.tld, no attempt to
// cover every RFC 5322 corner.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen matches the backend's minimum.
	MinPasswordLen = 6
	// MaxEmailLen caps the address length.
	MaxEmailLen = 254
)

// ValidateEmail checks that the address looks like an email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email address %q is not valid", email)
	}
	return nil
}

// ValidatePassword checks the minimum password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
