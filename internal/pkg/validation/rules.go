package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}
