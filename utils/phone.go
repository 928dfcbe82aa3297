package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips formatting from a guest phone number for
// storage: digits only, leading zeros dropped, optional leading + kept out.
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	return strings.TrimLeft(digits, "0")
}

// ValidatePhoneNumber accepts any plausible international number: 7 to 15
// digits once formatting is removed.
func ValidatePhoneNumber(phoneNumber string) bool {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	return len(digits) >= 7 && len(digits) <= 15
}
