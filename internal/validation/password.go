package validation

import (
	"encoding/json"
	"strings"
	"unicode"
)

const specialChars = "`!@#$%^&*()_-+=[]{};':\"\\|,.<>/?~ "

// PasswordComplexity lists the complexity rules password misses, in a fixed
// order. Each character lands in at most one bucket, checked as number,
// uppercase, lowercase, then special. Whitespace counts as a number.
func PasswordComplexity(password string) []string {
	var upper, lower, number, special int

	for _, ch := range password {
		switch {
		case isNumeric(ch):
			number++
		case ch >= 'A' && ch <= 'Z':
			upper++
		case ch >= 'a' && ch <= 'z':
			lower++
		case strings.ContainsRune(specialChars, ch):
			special++
		}
	}

	var missing []string
	if lower < 1 {
		missing = append(missing, MessageMissingLower)
	}
	if upper < 1 {
		missing = append(missing, MessageMissingUpper)
	}
	if number < 1 {
		missing = append(missing, MessageMissingNumber)
	}
	if special < 1 {
		missing = append(missing, MessageMissingSpecial)
	}
	return missing
}

func isNumeric(ch rune) bool {
	return (ch >= '0' && ch <= '9') || unicode.IsSpace(ch) || ch == '\uFEFF'
}

// complexityMessage serializes the missing rules as a JSON array string.
func complexityMessage(missing []string) string {
	b, err := json.Marshal(missing)
	if err != nil {
		return strings.Join(missing, " ")
	}
	return string(b)
}
