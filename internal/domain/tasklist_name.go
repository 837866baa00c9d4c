package domain

import (
	"regexp"
	"strings"
)

const maxTaskListNameLength = 100

var whitespaceRun = regexp.MustCompile(`\s+`)

// TaskListName is a validated, whitespace-normalized task list name.
// Unlike person names it keeps the caller's casing.
type TaskListName struct {
	value string
}

// NewTaskListName validates and normalizes raw. Normalization (collapse
// whitespace runs, trim the ends) happens before the length check, so a
// name that only exceeds the limit because of stray whitespace is accepted.
func NewTaskListName(raw string) (TaskListName, error) {
	if strings.TrimSpace(raw) == "" {
		return TaskListName{}, NewValidationError("TaskList.Name", "task list name cannot be empty")
	}

	normalized := strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))

	if len([]rune(normalized)) > maxTaskListNameLength {
		return TaskListName{}, NewValidationError(
			"TaskList.Name",
			"task list name must be at most 100 characters",
		)
	}
	return TaskListName{value: normalized}, nil
}

// String returns the normalized name.
func (n TaskListName) String() string {
	return n.value
}
