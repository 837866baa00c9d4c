package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kelist/kelist-api/internal/platform/logger"
	"github.com/kelist/kelist-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
// It returns a store bound to the given transaction, sharing the
// component logger.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

const userColumns = `id, name, last_name, email, hashed_password, role,
	refresh_token, refresh_token_expires_at, created_at, updated_at`

// GetAll implements store.UserStore.GetAll
// It lists every user row without loading the owned task lists.
func (s *PostgresUserStore) GetAll(ctx context.Context) ([]store.UserRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError("user", "list", err)
	}
	defer func() { _ = rows.Close() }()

	var users []store.UserRecord
	for rows.Next() {
		var user store.UserRecord
		if err := scanUser(rows, &user); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, MapError("user", "list", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError("user", "list", err)
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID
// It retrieves a user with the full aggregate of task lists and items.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*store.UserRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	var user store.UserRecord
	if err := scanUser(s.db.QueryRowContext(ctx, query, id), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, MapError("user", "get", err)
	}

	if err := s.loadTaskLists(ctx, &user); err != nil {
		log.Error("failed to load task lists",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, MapError("user", "get", err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// It retrieves a user with the full aggregate by email address.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*store.UserRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var user store.UserRecord
	if err := scanUser(s.db.QueryRowContext(ctx, query, email), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email", slog.String("error", err.Error()))
		return nil, MapError("user", "get", err)
	}

	if err := s.loadTaskLists(ctx, &user); err != nil {
		log.Error("failed to load task lists",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, MapError("user", "get", err)
	}
	return &user, nil
}

// ExistsByID implements store.UserStore.ExistsByID
func (s *PostgresUserStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, MapError("user", "exists", err)
	}
	return exists, nil
}

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, MapError("user", "exists", err)
	}
	return exists, nil
}

// Create implements store.UserStore.Create
// It inserts the user row only; task lists are persisted through the
// dedicated mutators. Returns store.ErrEmailExists when the email unique
// index rejects the insert.
func (s *PostgresUserStore) Create(ctx context.Context, user *store.UserRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.LastName,
		user.Email,
		user.HashedPassword,
		user.Role,
		user.RefreshToken,
		user.RefreshTokenExpiresAt,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError("user", "create", err)
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// Update implements store.UserStore.Update
// It rewrites the profile, credential and refresh-token columns.
// Returns store.ErrUserNotFound if the row is absent and
// store.ErrEmailExists when changing to a taken email.
func (s *PostgresUserStore) Update(ctx context.Context, user *store.UserRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET name = $2,
			last_name = $3,
			email = $4,
			hashed_password = $5,
			role = $6,
			refresh_token = $7,
			refresh_token_expires_at = $8,
			updated_at = $9
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.LastName,
		user.Email,
		user.HashedPassword,
		user.Role,
		user.RefreshToken,
		user.RefreshTokenExpiresAt,
		user.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during user update",
				slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError("user", "update", err)
	}

	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user updated", slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// Owned task lists and items are removed by ON DELETE CASCADE.
// Returns store.ErrUserNotFound if the row is absent.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError("user", "delete", err)
	}

	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}

// scanTarget abstracts *sql.Row and *sql.Rows for shared scanning.
type scanTarget interface {
	Scan(dest ...any) error
}

func scanUser(row scanTarget, user *store.UserRecord) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.LastName,
		&user.Email,
		&user.HashedPassword,
		&user.Role,
		&user.RefreshToken,
		&user.RefreshTokenExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

// loadTaskLists fills in the user's task lists and their items with a
// single joined query, in creation order.
func (s *PostgresUserStore) loadTaskLists(ctx context.Context, user *store.UserRecord) error {
	query := `
		SELECT l.id, l.name, i.id, i.description, i.is_completed
		FROM task_lists l
		LEFT JOIN task_items i ON i.task_list_id = l.id
		WHERE l.user_id = $1
		ORDER BY l.created_at, i.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, user.ID)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	user.TaskLists = []store.TaskListRecord{}
	index := map[uuid.UUID]int{}

	for rows.Next() {
		var (
			listID      uuid.UUID
			listName    string
			itemID      uuid.NullUUID
			description sql.NullString
			isCompleted sql.NullBool
		)
		if err := rows.Scan(&listID, &listName, &itemID, &description, &isCompleted); err != nil {
			return err
		}

		pos, ok := index[listID]
		if !ok {
			pos = len(user.TaskLists)
			index[listID] = pos
			user.TaskLists = append(user.TaskLists, store.TaskListRecord{
				ID:   listID,
				Name: listName,
			})
		}

		// Rows without an item come from the LEFT JOIN on empty lists.
		if itemID.Valid {
			user.TaskLists[pos].Items = append(user.TaskLists[pos].Items, store.TaskItemRecord{
				ID:          itemID.UUID,
				Description: description.String,
				IsCompleted: isCompleted.Bool,
			})
		}
	}
	return rows.Err()
}
