// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

// emailRegex is intentionally loose: one local part, one domain, one TLD.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks if a password meets the minimum requirements
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}

// MissingOnboardingFields returns the names of required onboarding fields
// that are empty, in a stable order.
func MissingOnboardingFields(fullName, bio, nativeLanguage, learningLanguage, location string) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"fullName", fullName},
		{"bio", bio},
		{"nativeLanguage", nativeLanguage},
		{"learningLanguage", learningLanguage},
		{"location", location},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
