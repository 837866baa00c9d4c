package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/events"
	"github.com/kelist/kelist-api/internal/service/auth"
	"github.com/kelist/kelist-api/internal/store"
)

// UserService provides user management operations.
type UserService interface {
	// ListUsers returns every user, oldest first.
	ListUsers(ctx context.Context) ([]UserResult, error)

	// GetUser retrieves a single user by id.
	GetUser(ctx context.Context, userID uuid.UUID) (*UserResult, error)

	// CreateUser registers a user with the given profile and plaintext
	// password. A taken email is rejected before field validation runs.
	CreateUser(ctx context.Context, name, lastName, email, password string) (*UserResult, error)

	// UpdateUser replaces a user's profile and password wholesale.
	UpdateUser(ctx context.Context, userID uuid.UUID, name, lastName, email, password string) (*UserResult, error)

	// DeleteUser removes a user and, through the store, every task list
	// and item they own.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	passwords auth.PasswordService
	publisher events.Publisher
	db        *sql.DB
	logger    *slog.Logger
	runTx     func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	passwords auth.PasswordService,
	publisher events.Publisher,
	db *sql.DB,
	logger *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		passwords: passwords,
		publisher: publisher,
		db:        db,
		logger:    logger.With("component", "user_service"),
		runTx:     store.RunInTransaction,
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// ListUsers implements UserService.ListUsers.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]UserResult, error) {
	records, err := s.userStore.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	results := make([]UserResult, 0, len(records))
	for i := range records {
		results = append(results, *userResultFromRecord(&records[i]))
	}
	return results, nil
}

// GetUser implements UserService.GetUser.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*UserResult, error) {
	record, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFound(err) {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", userID)
		}
		return nil, translateStoreError(err)
	}
	return userResultFromRecord(record), nil
}

// CreateUser implements UserService.CreateUser.
// The uniqueness check runs first, before field validation and the
// password hash, so a taken email is rejected ahead of any other
// complaint; the unique index still decides races at commit time.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	name, lastName, email, password string,
) (*UserResult, error) {
	taken, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicatedEmail
	}

	personName, personLastName, emailVO, err := domain.ValidateUserInput(name, lastName, email)
	if err != nil {
		return nil, err
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := domain.NewUser(uuid.New(), personName, personLastName, emailVO, hashed)
	user.NotifyCreate()

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, store.NewUserRecord(user))
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, domain.ErrDuplicatedEmail
		}
		s.logger.Error("failed to persist user", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.publishEvents(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return &UserResult{ID: user.ID, FullName: user.FullName(), Email: user.Email.String()}, nil
}

// UpdateUser implements UserService.UpdateUser.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	name, lastName, email, password string,
) (*UserResult, error) {
	record, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, translateStoreError(err)
	}

	personName, personLastName, emailVO, err := domain.ValidateUserInput(name, lastName, email)
	if err != nil {
		return nil, err
	}

	if emailVO.String() != record.Email {
		taken, err := s.userStore.ExistsByEmail(ctx, emailVO.String())
		if err != nil {
			s.logger.Error("failed to check email uniqueness", "error", err)
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		if taken {
			return nil, domain.ErrDuplicatedEmail
		}
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user := domain.NewUser(userID, personName, personLastName, emailVO, hashed)
	user.Role = record.Role
	user.CreatedAt = record.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	if record.RefreshToken != nil && record.RefreshTokenExpiresAt != nil {
		user.SetRefreshToken(*record.RefreshToken, *record.RefreshTokenExpiresAt)
	}
	user.NotifyUpdate()

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Update(ctx, store.NewUserRecord(user))
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, domain.ErrDuplicatedEmail
		}
		s.logger.Error("failed to update user", "error", err, "user_id", userID)
		return nil, translateStoreError(err)
	}

	if err := s.publishEvents(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", userID)
	return &UserResult{ID: user.ID, FullName: user.FullName(), Email: user.Email.String()}, nil
}

// DeleteUser implements UserService.DeleteUser.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	record, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return translateStoreError(err)
	}

	user, err := record.ToDomain()
	if err != nil {
		s.logger.Error("failed to rebuild user aggregate", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	user.NotifyDelete()

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		return translateStoreError(err)
	}

	if err := s.publishEvents(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}

// publishEvents delivers the aggregate's recorded events after a commit
// and clears the recorder. A publish failure cannot undo the committed
// write, so it is logged and surfaced to the caller.
func (s *UserServiceImpl) publishEvents(ctx context.Context, user *domain.User) error {
	batch := user.DomainEvents()
	user.ClearDomainEvents()

	if err := s.publisher.Publish(ctx, batch); err != nil {
		s.logger.Error("failed to publish domain events",
			"error", err,
			"user_id", user.ID,
			"event_count", len(batch))
		return fmt.Errorf("user change committed but event publication failed: %w", err)
	}
	return nil
}
