package domain

import "github.com/google/uuid"

// TaskItem is a single to-do entry, owned by exactly one task list.
// IsCompleted is a plain settable field: the dominant update flow replaces
// the whole item rather than toggling it through a method.
type TaskItem struct {
	ID          uuid.UUID
	Description Description
	IsCompleted bool
}

// NewTaskItem creates a task item. Items start out not completed.
func NewTaskItem(id uuid.UUID, description Description) TaskItem {
	return TaskItem{ID: id, Description: description}
}

// MarkCompleted flips the item to completed. One-way: there is no reopen
// counterpart, callers that need one set IsCompleted directly.
func (i *TaskItem) MarkCompleted() {
	i.IsCompleted = true
}
