package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - applied after lower-casing
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 120

	// Rating bounds for course reviews
	RatingMin = 0
	RatingMax = 10
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the email has a plausible address shape.
// Comparison is case-insensitive; the address is lower-cased before matching.
func IsValidEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidName reports whether a display name is within the allowed length.
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}

// IsValidRating reports whether a review rating is within bounds.
func IsValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// NormalizeEmail trims whitespace and lower-cases an email address.
// Emails are stored lower-cased so the unique index compares equal addresses.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
