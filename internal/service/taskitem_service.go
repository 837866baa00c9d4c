package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/store"
)

// TaskItemService manages the items inside one of a user's task lists.
// Lookups walk the user, list, item chain so a miss reports which link
// was absent.
type TaskItemService interface {
	// ListTaskItems returns all items of the given list.
	ListTaskItems(ctx context.Context, userID, listID uuid.UUID) ([]TaskItemResult, error)

	// CreateTaskItem appends a pending item to the list.
	CreateTaskItem(ctx context.Context, userID, listID uuid.UUID, description string) (*TaskItemResult, error)

	// UpdateTaskItem replaces an item's description and completion flag.
	UpdateTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID, description string, isCompleted bool) (*TaskItemResult, error)

	// DeleteTaskItem removes an item from the list.
	DeleteTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID) error
}

// TaskItemServiceImpl implements the TaskItemService interface.
type TaskItemServiceImpl struct {
	userStore store.UserStore
	db        *sql.DB
	logger    *slog.Logger
	runTx     func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewTaskItemService creates a new TaskItemService.
func NewTaskItemService(userStore store.UserStore, db *sql.DB, logger *slog.Logger) *TaskItemServiceImpl {
	return &TaskItemServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With("component", "task_item_service"),
		runTx:     store.RunInTransaction,
	}
}

var _ TaskItemService = (*TaskItemServiceImpl)(nil)

// ListTaskItems implements TaskItemService.ListTaskItems.
func (s *TaskItemServiceImpl) ListTaskItems(ctx context.Context, userID, listID uuid.UUID) ([]TaskItemResult, error) {
	list, err := s.loadTaskList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	results := make([]TaskItemResult, 0, len(list.Items))
	for _, item := range list.Items {
		results = append(results, TaskItemResult{
			ID:          item.ID,
			Description: item.Description,
			IsCompleted: item.IsCompleted,
		})
	}
	return results, nil
}

// CreateTaskItem implements TaskItemService.CreateTaskItem.
// New items always start pending.
func (s *TaskItemServiceImpl) CreateTaskItem(
	ctx context.Context,
	userID, listID uuid.UUID,
	description string,
) (*TaskItemResult, error) {
	if _, err := s.loadTaskList(ctx, userID, listID); err != nil {
		return nil, err
	}

	desc, err := domain.NewDescription(description)
	if err != nil {
		return nil, err
	}

	item := domain.NewTaskItem(uuid.New(), desc)
	record := &store.TaskItemRecord{
		ID:          item.ID,
		Description: item.Description.String(),
		IsCompleted: item.IsCompleted,
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).AddTaskItem(ctx, userID, listID, record)
	})
	if err != nil {
		s.logger.Error("failed to add task item", "error", err, "list_id", listID)
		return nil, translateStoreError(err)
	}

	s.logger.Info("task item created", "list_id", listID, "item_id", item.ID)
	return &TaskItemResult{ID: record.ID, Description: record.Description, IsCompleted: record.IsCompleted}, nil
}

// UpdateTaskItem implements TaskItemService.UpdateTaskItem.
// Description and completion flag are replaced wholesale; completing and
// reopening an item both go through here.
func (s *TaskItemServiceImpl) UpdateTaskItem(
	ctx context.Context,
	userID, listID, itemID uuid.UUID,
	description string,
	isCompleted bool,
) (*TaskItemResult, error) {
	list, err := s.loadTaskList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}
	if findTaskItem(list, itemID) == nil {
		return nil, domain.ErrTaskItemNotFound
	}

	desc, err := domain.NewDescription(description)
	if err != nil {
		return nil, err
	}

	record := &store.TaskItemRecord{ID: itemID, Description: desc.String(), IsCompleted: isCompleted}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).UpdateTaskItem(ctx, userID, listID, record)
	})
	if err != nil {
		s.logger.Error("failed to update task item", "error", err, "item_id", itemID)
		return nil, translateStoreError(err)
	}

	s.logger.Info("task item updated", "list_id", listID, "item_id", itemID)
	return &TaskItemResult{ID: record.ID, Description: record.Description, IsCompleted: record.IsCompleted}, nil
}

// DeleteTaskItem implements TaskItemService.DeleteTaskItem.
func (s *TaskItemServiceImpl) DeleteTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID) error {
	list, err := s.loadTaskList(ctx, userID, listID)
	if err != nil {
		return err
	}
	if findTaskItem(list, itemID) == nil {
		return domain.ErrTaskItemNotFound
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).DeleteTaskItem(ctx, userID, listID, itemID)
	})
	if err != nil {
		s.logger.Error("failed to delete task item", "error", err, "item_id", itemID)
		return translateStoreError(err)
	}

	s.logger.Info("task item deleted", "list_id", listID, "item_id", itemID)
	return nil
}

// loadTaskList resolves the user then the list, translating each missing
// link into its own domain error.
func (s *TaskItemServiceImpl) loadTaskList(
	ctx context.Context,
	userID, listID uuid.UUID,
) (*store.TaskListRecord, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err)
	}

	list := findTaskList(user, listID)
	if list == nil {
		return nil, domain.ErrTaskListNotFound
	}
	return list, nil
}

// findTaskItem locates an item in the loaded list, or nil.
func findTaskItem(list *store.TaskListRecord, itemID uuid.UUID) *store.TaskItemRecord {
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			return &list.Items[i]
		}
	}
	return nil
}
