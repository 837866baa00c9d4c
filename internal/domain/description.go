package domain

import "strings"

// Description is a validated task item description. The domain-level rule
// is only non-emptiness; the maximum length is enforced by the request
// validation layer.
type Description struct {
	value string
}

// NewDescription validates raw and returns a Description carrying it verbatim.
func NewDescription(raw string) (Description, error) {
	if strings.TrimSpace(raw) == "" {
		return Description{}, NewValidationError("TaskItem.Description", "description cannot be empty")
	}
	return Description{value: raw}, nil
}

// String returns the description exactly as it was provided.
func (d Description) String() string {
	return d.value
}
