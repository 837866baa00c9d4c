package domain

import (
	"strings"
	"unicode"
)

const maxNameLength = 50

// PersonName is a validated, normalized first name.
type PersonName struct {
	value string
}

// NewPersonName validates and normalizes raw: surrounding and internal
// whitespace is collapsed and each word is title-cased, so "  mary   jane "
// becomes "Mary Jane". The length limit applies to the normalized value.
func NewPersonName(raw string) (PersonName, error) {
	if strings.TrimSpace(raw) == "" {
		return PersonName{}, NewValidationError("User.Name", "name cannot be empty")
	}

	normalized := normalizeName(raw)

	if len([]rune(normalized)) > maxNameLength {
		return PersonName{}, NewValidationError("User.Name", "name must be at most 50 characters")
	}
	if !lettersAndSpacesOnly(normalized) {
		return PersonName{}, NewValidationError("User.Name", "name may only contain letters")
	}
	return PersonName{value: normalized}, nil
}

// String returns the normalized name.
func (n PersonName) String() string {
	return n.value
}

// LastName is a validated, normalized last name. It follows the same
// normalization pipeline as PersonName but reports under its own code.
type LastName struct {
	value string
}

// NewLastName validates and normalizes raw the same way NewPersonName does.
func NewLastName(raw string) (LastName, error) {
	if strings.TrimSpace(raw) == "" {
		return LastName{}, NewValidationError("User.LastName", "last name cannot be empty")
	}

	normalized := normalizeName(raw)

	if len([]rune(normalized)) > maxNameLength {
		return LastName{}, NewValidationError("User.LastName", "last name must be at most 50 characters")
	}
	if !lettersAndSpacesOnly(normalized) {
		return LastName{}, NewValidationError("User.LastName", "last name may only contain letters")
	}
	return LastName{value: normalized}, nil
}

// String returns the normalized last name.
func (n LastName) String() string {
	return n.value
}

// normalizeName collapses whitespace runs and title-cases each word.
// It is idempotent: normalizing an already normalized name is a no-op.
func normalizeName(raw string) string {
	words := strings.Fields(raw)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func lettersAndSpacesOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}
