package service

import (
	"strings"
	"unicode/utf8"
)

const minPasswordLength = 8

const (
	msgPasswordTooShort    = "Password must be at least 8 characters long."
	msgPasswordNoUppercase = "Password must contain at least one uppercase letter."
	msgPasswordTooLong     = "Password must be at most 72 bytes long."
	msgUsernameRequired    = "Username is required."
)

// ValidatePassword checks a candidate password against the strength rules.
// Only the first violated rule is reported; length is checked before case.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return newValidationError(msgPasswordTooShort)
	}
	if !strings.ContainsFunc(password, isASCIIUpper) {
		return newValidationError(msgPasswordNoUppercase)
	}
	return nil
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
