package service

import (
	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/store"
)

// UserResult is the read projection of a user returned by queries and
// commands. Credentials and refresh tokens never leave the service layer.
type UserResult struct {
	ID       uuid.UUID
	FullName string
	Email    string
}

// TaskListResult is the read projection of a task list with its items.
type TaskListResult struct {
	ID    uuid.UUID
	Name  string
	Items []TaskItemResult
}

// TaskItemResult is the read projection of a task item.
type TaskItemResult struct {
	ID          uuid.UUID
	Description string
	IsCompleted bool
}

func userResultFromRecord(rec *store.UserRecord) *UserResult {
	return &UserResult{
		ID:       rec.ID,
		FullName: rec.FullName(),
		Email:    rec.Email,
	}
}

func taskListResultFromRecord(rec *store.TaskListRecord) *TaskListResult {
	result := &TaskListResult{
		ID:    rec.ID,
		Name:  rec.Name,
		Items: make([]TaskItemResult, 0, len(rec.Items)),
	}
	for _, item := range rec.Items {
		result.Items = append(result.Items, TaskItemResult{
			ID:          item.ID,
			Description: item.Description,
			IsCompleted: item.IsCompleted,
		})
	}
	return result
}
