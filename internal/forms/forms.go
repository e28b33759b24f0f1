// Package forms holds the account form checks used by the storefront pages.
package forms

import (
	"regexp"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the shortest password IsStrongPassword accepts.
const MinPasswordLength = 8

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsStrongPassword wants MinPasswordLength characters including a lower case
// letter, an upper case letter and a digit.
func IsStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}

	return lower && upper && digit
}
