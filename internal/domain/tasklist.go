package domain

import "github.com/google/uuid"

// TaskList is a named collection of task items, owned by exactly one user.
// It is created through a user-scoped command and never stands alone.
type TaskList struct {
	ID    uuid.UUID
	Name  TaskListName
	Items []TaskItem
}

// NewTaskList creates an empty task list with a validated name.
func NewTaskList(id uuid.UUID, name TaskListName) TaskList {
	return TaskList{ID: id, Name: name}
}

// AddTaskItem appends an item to the owned collection. No dedup check.
func (l *TaskList) AddTaskItem(item TaskItem) {
	l.Items = append(l.Items, item)
}
