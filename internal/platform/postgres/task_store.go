package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kelist/kelist-api/internal/platform/logger"
	"github.com/kelist/kelist-api/internal/store"
)

// Task-list and task-item mutators for PostgresUserStore. Every statement
// scopes the target by its owner in the WHERE clause, so a caller can never
// touch another user's lists or another list's items.

// AddTaskList implements store.UserStore.AddTaskList
// Returns store.ErrUserNotFound when the owner row is absent.
func (s *PostgresUserStore) AddTaskList(ctx context.Context, userID uuid.UUID, list *store.TaskListRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO task_lists (id, user_id, name, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, list.ID, userID, list.Name, time.Now().UTC())
	if err != nil {
		mapped := MapError("task_list", "create", err)
		if store.IsInvalidRecord(mapped) {
			log.Warn("task list insert rejected, owner missing",
				slog.String("user_id", userID.String()))
			return store.ErrUserNotFound
		}
		log.Error("failed to add task list",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("list_id", list.ID.String()))
		return mapped
	}

	log.Info("task list added",
		slog.String("user_id", userID.String()),
		slog.String("list_id", list.ID.String()))
	return nil
}

// UpdateTaskList implements store.UserStore.UpdateTaskList
// Returns store.ErrTaskListNotFound when no list with the given id exists
// under the user.
func (s *PostgresUserStore) UpdateTaskList(ctx context.Context, userID uuid.UUID, list *store.TaskListRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE task_lists
		SET name = $3
		WHERE id = $1 AND user_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, list.ID, userID, list.Name)
	if err != nil {
		log.Error("failed to update task list",
			slog.String("error", err.Error()),
			slog.String("list_id", list.ID.String()))
		return MapError("task_list", "update", err)
	}

	if err := checkRowsAffected(result, store.ErrTaskListNotFound); err != nil {
		return err
	}

	log.Info("task list updated", slog.String("list_id", list.ID.String()))
	return nil
}

// DeleteTaskList implements store.UserStore.DeleteTaskList
// Items under the list are removed by ON DELETE CASCADE.
// Returns store.ErrTaskListNotFound when absent under the user.
func (s *PostgresUserStore) DeleteTaskList(ctx context.Context, userID, listID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM task_lists WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, listID, userID)
	if err != nil {
		log.Error("failed to delete task list",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()))
		return MapError("task_list", "delete", err)
	}

	if err := checkRowsAffected(result, store.ErrTaskListNotFound); err != nil {
		return err
	}

	log.Info("task list deleted", slog.String("list_id", listID.String()))
	return nil
}

// AddTaskItem implements store.UserStore.AddTaskItem
// The insert only succeeds when the list exists and belongs to the user;
// otherwise store.ErrTaskListNotFound is returned.
func (s *PostgresUserStore) AddTaskItem(ctx context.Context, userID, listID uuid.UUID, item *store.TaskItemRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO task_items (id, task_list_id, description, is_completed, created_at)
		SELECT $1, l.id, $3, $4, $5
		FROM task_lists l
		WHERE l.id = $2 AND l.user_id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		listID,
		item.Description,
		item.IsCompleted,
		time.Now().UTC(),
		userID,
	)
	if err != nil {
		log.Error("failed to add task item",
			slog.String("error", err.Error()),
			slog.String("list_id", listID.String()),
			slog.String("item_id", item.ID.String()))
		return MapError("task_item", "create", err)
	}

	if err := checkRowsAffected(result, store.ErrTaskListNotFound); err != nil {
		return err
	}

	log.Info("task item added",
		slog.String("list_id", listID.String()),
		slog.String("item_id", item.ID.String()))
	return nil
}

// UpdateTaskItem implements store.UserStore.UpdateTaskItem
// Returns store.ErrTaskItemNotFound when no item with the given id exists
// under the user's list.
func (s *PostgresUserStore) UpdateTaskItem(ctx context.Context, userID, listID uuid.UUID, item *store.TaskItemRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE task_items
		SET description = $4, is_completed = $5
		WHERE id = $1
		  AND task_list_id IN (
			SELECT id FROM task_lists WHERE id = $2 AND user_id = $3
		  )
	`
	result, err := s.db.ExecContext(ctx, query, item.ID, listID, userID, item.Description, item.IsCompleted)
	if err != nil {
		log.Error("failed to update task item",
			slog.String("error", err.Error()),
			slog.String("item_id", item.ID.String()))
		return MapError("task_item", "update", err)
	}

	if err := checkRowsAffected(result, store.ErrTaskItemNotFound); err != nil {
		return err
	}

	log.Info("task item updated", slog.String("item_id", item.ID.String()))
	return nil
}

// DeleteTaskItem implements store.UserStore.DeleteTaskItem
// Returns store.ErrTaskItemNotFound when absent under the user's list.
func (s *PostgresUserStore) DeleteTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM task_items
		WHERE id = $1
		  AND task_list_id IN (
			SELECT id FROM task_lists WHERE id = $2 AND user_id = $3
		  )
	`
	result, err := s.db.ExecContext(ctx, query, itemID, listID, userID)
	if err != nil {
		log.Error("failed to delete task item",
			slog.String("error", err.Error()),
			slog.String("item_id", itemID.String()))
		return MapError("task_item", "delete", err)
	}

	if err := checkRowsAffected(result, store.ErrTaskItemNotFound); err != nil {
		return err
	}

	log.Info("task item deleted", slog.String("item_id", itemID.String()))
	return nil
}
