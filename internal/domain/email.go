package domain

import (
	"regexp"
	"strings"
)

// emailPattern requires a local part, an @, a domain and a TLD of at
// least two letters. Intentionally simple; stricter RFC 5322 parsing is
// not worth the complexity for this service.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email is a validated, immutable email address. The zero value is not a
// valid Email; NewEmail is the only way to obtain one.
type Email struct {
	value string
}

// NewEmail validates raw and returns an Email carrying it verbatim.
// Checks run in a fixed order so error reporting is deterministic:
// emptiness, then structure, then length.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, NewValidationError("User.Email", "email cannot be empty")
	}
	if !emailPattern.MatchString(raw) {
		return Email{}, NewValidationError("User.Email", "email has an invalid structure")
	}
	if len(raw) > 255 {
		return Email{}, NewValidationError("User.Email", "email must be at most 255 characters")
	}
	return Email{value: raw}, nil
}

// String returns the address exactly as it was provided.
func (e Email) String() string {
	return e.value
}
