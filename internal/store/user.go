package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UserRecord is the persistence-shaped projection of a user aggregate.
// It carries raw strings rather than domain value objects: values were
// validated when written, and the domain layer re-wraps them on the way
// out where it needs to.
type UserRecord struct {
	ID                    uuid.UUID
	Name                  string
	LastName              string
	Email                 string
	HashedPassword        string
	Role                  string
	RefreshToken          *string
	RefreshTokenExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
	TaskLists             []TaskListRecord
}

// FullName joins the stored first and last name.
func (r *UserRecord) FullName() string {
	return r.Name + " " + r.LastName
}

// TaskListRecord is the persistence-shaped projection of a task list.
type TaskListRecord struct {
	ID    uuid.UUID
	Name  string
	Items []TaskItemRecord
}

// TaskItemRecord is the persistence-shaped projection of a task item.
type TaskItemRecord struct {
	ID          uuid.UUID
	Description string
	IsCompleted bool
}

// UserStore is the repository contract for the user aggregate, including
// the nested task-list and task-item mutators. All mutating calls only
// stage changes against the connection they run on; atomicity comes from
// running them on a transaction via WithTx and committing through
// RunInTransaction.
type UserStore interface {
	// GetAll returns every user without their task lists, ordered by
	// creation time.
	GetAll(ctx context.Context) ([]UserRecord, error)

	// GetByID retrieves a user with the full aggregate (task lists and
	// items, in creation order). Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*UserRecord, error)

	// GetByEmail retrieves a user with the full aggregate by email.
	// Returns ErrUserNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new user row. Returns ErrEmailExists when the email
	// unique index rejects the insert.
	Create(ctx context.Context, user *UserRecord) error

	// Update rewrites a user's profile, credential and refresh-token
	// columns. Returns ErrUserNotFound if the row is absent and
	// ErrEmailExists when changing to a taken email.
	Update(ctx context.Context, user *UserRecord) error

	// Delete removes a user. Owned task lists and items go with it via
	// ON DELETE CASCADE. Returns ErrUserNotFound if the row is absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddTaskList inserts a task list under the given user.
	AddTaskList(ctx context.Context, userID uuid.UUID, list *TaskListRecord) error

	// UpdateTaskList renames a task list owned by the given user.
	// Returns ErrTaskListNotFound if no such list exists under the user.
	UpdateTaskList(ctx context.Context, userID uuid.UUID, list *TaskListRecord) error

	// DeleteTaskList removes a task list owned by the given user, cascading
	// to its items. Returns ErrTaskListNotFound if absent.
	DeleteTaskList(ctx context.Context, userID, listID uuid.UUID) error

	// AddTaskItem inserts a task item under the given user's task list.
	AddTaskItem(ctx context.Context, userID, listID uuid.UUID, item *TaskItemRecord) error

	// UpdateTaskItem replaces a task item's description and completion flag.
	// Returns ErrTaskItemNotFound if no such item exists under the list.
	UpdateTaskItem(ctx context.Context, userID, listID uuid.UUID, item *TaskItemRecord) error

	// DeleteTaskItem removes a task item. Returns ErrTaskItemNotFound if absent.
	DeleteTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction so several
	// mutations commit or roll back together.
	WithTx(tx *sql.Tx) UserStore
}
