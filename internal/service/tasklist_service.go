package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/store"
)

// TaskListService manages the task lists owned by a user. Every operation
// is scoped to the owning user; a list id outside that scope behaves as
// missing.
type TaskListService interface {
	// ListTaskLists returns all of a user's task lists with their items.
	ListTaskLists(ctx context.Context, userID uuid.UUID) ([]TaskListResult, error)

	// CreateTaskList adds a new, empty task list under the user.
	CreateTaskList(ctx context.Context, userID uuid.UUID, name string) (*TaskListResult, error)

	// UpdateTaskList renames one of the user's task lists.
	UpdateTaskList(ctx context.Context, userID, listID uuid.UUID, name string) (*TaskListResult, error)

	// DeleteTaskList removes one of the user's task lists with its items.
	DeleteTaskList(ctx context.Context, userID, listID uuid.UUID) error
}

// TaskListServiceImpl implements the TaskListService interface.
type TaskListServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
	runTx     func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewTaskListService creates a new TaskListService.
func NewTaskListService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) *TaskListServiceImpl {
	return &TaskListServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "task_list_service"),
		runTx:     store.RunInTransaction,
	}
}

var _ TaskListService = (*TaskListServiceImpl)(nil)

// ListTaskLists implements TaskListService.ListTaskLists.
func (s *TaskListServiceImpl) ListTaskLists(ctx context.Context, userID uuid.UUID) ([]TaskListResult, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err)
	}

	results := make([]TaskListResult, 0, len(user.TaskLists))
	for i := range user.TaskLists {
		results = append(results, *taskListResultFromRecord(&user.TaskLists[i]))
	}
	return results, nil
}

// CreateTaskList implements TaskListService.CreateTaskList.
// The owner is resolved before any mutation; a missing user means no
// insert is attempted.
func (s *TaskListServiceImpl) CreateTaskList(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*TaskListResult, error) {
	exists, err := s.userStore.ExistsByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to check user existence", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create task list: %w", err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	listName, err := domain.NewTaskListName(name)
	if err != nil {
		return nil, err
	}

	list := domain.NewTaskList(uuid.New(), listName)
	record := &store.TaskListRecord{ID: list.ID, Name: list.Name.String()}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).AddTaskList(ctx, userID, record)
	})
	if err != nil {
		s.logger.Error("failed to add task list", "error", err, "user_id", userID)
		return nil, translateStoreError(err)
	}

	s.logger.Info("task list created", "user_id", userID, "list_id", list.ID)
	return taskListResultFromRecord(record), nil
}

// UpdateTaskList implements TaskListService.UpdateTaskList.
func (s *TaskListServiceImpl) UpdateTaskList(
	ctx context.Context,
	userID, listID uuid.UUID,
	name string,
) (*TaskListResult, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err)
	}

	current := findTaskList(user, listID)
	if current == nil {
		return nil, domain.ErrTaskListNotFound
	}

	listName, err := domain.NewTaskListName(name)
	if err != nil {
		return nil, err
	}

	record := &store.TaskListRecord{ID: listID, Name: listName.String(), Items: current.Items}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).UpdateTaskList(ctx, userID, record)
	})
	if err != nil {
		s.logger.Error("failed to update task list", "error", err, "list_id", listID)
		return nil, translateStoreError(err)
	}

	s.logger.Info("task list updated", "user_id", userID, "list_id", listID)
	return taskListResultFromRecord(record), nil
}

// DeleteTaskList implements TaskListService.DeleteTaskList.
func (s *TaskListServiceImpl) DeleteTaskList(ctx context.Context, userID, listID uuid.UUID) error {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return translateStoreError(err)
	}
	if findTaskList(user, listID) == nil {
		return domain.ErrTaskListNotFound
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).DeleteTaskList(ctx, userID, listID)
	})
	if err != nil {
		s.logger.Error("failed to delete task list", "error", err, "list_id", listID)
		return translateStoreError(err)
	}

	s.logger.Info("task list deleted", "user_id", userID, "list_id", listID)
	return nil
}

// findTaskList locates a list in the loaded aggregate, or nil.
func findTaskList(user *store.UserRecord, listID uuid.UUID) *store.TaskListRecord {
	for i := range user.TaskLists {
		if user.TaskLists[i].ID == listID {
			return &user.TaskLists[i]
		}
	}
	return nil
}
