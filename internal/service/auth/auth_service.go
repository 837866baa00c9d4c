package auth

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/events"
	"github.com/kelist/kelist-api/internal/store"
)

// AuthResult carries the identity and token pair returned by every
// successful authentication operation.
type AuthResult struct {
	UserID       uuid.UUID
	FullName     string
	Email        string
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login and refresh-token rotation.
type AuthService interface {
	// Register creates a new user account and issues a token pair.
	Register(ctx context.Context, name, lastName, email, password string) (*AuthResult, error)

	// Login verifies credentials and issues a token pair. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// RefreshTokens exchanges a valid stored refresh token for a fresh
	// token pair, rotating the refresh token.
	RefreshTokens(ctx context.Context, userID uuid.UUID, refreshToken string) (*AuthResult, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore store.UserStore
	passwords PasswordService
	tokens    TokenService
	publisher events.Publisher
	db        *sql.DB
	logger    *slog.Logger
	timeFunc  func() time.Time // Injectable for testing
	runTx     func(ctx context.Context, db *sql.DB, fn store.TxFn) error
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	passwords PasswordService,
	tokens TokenService,
	publisher events.Publisher,
	db *sql.DB,
	logger *slog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userStore: userStore,
		passwords: passwords,
		tokens:    tokens,
		publisher: publisher,
		db:        db,
		logger:    logger.With("component", "auth_service"),
		timeFunc:  time.Now,
		runTx:     store.RunInTransaction,
	}
}

var _ AuthService = (*AuthServiceImpl)(nil)

// Register implements AuthService.Register.
// The email check runs first, before field validation and the bcrypt
// hash; the unique index still settles concurrent registrations at
// commit time.
func (s *AuthServiceImpl) Register(
	ctx context.Context,
	name, lastName, email, password string,
) (*AuthResult, error) {
	taken, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
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
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user := domain.NewUser(uuid.New(), personName, personLastName, emailVO, hashed)
	user.NotifyCreate()

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, store.NewUserRecord(user))
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, domain.ErrDuplicatedEmail
		}
		s.logger.Error("failed to persist user", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if err := s.publishEvents(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return &AuthResult{
		UserID:       user.ID,
		FullName:     user.FullName(),
		Email:        user.Email.String(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login implements AuthService.Login.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	record, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFound(err) {
			// Same error as a wrong password so the endpoint cannot be
			// used to probe for registered emails.
			return nil, domain.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if err := s.passwords.Verify(record.HashedPassword, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := record.ToDomain()
	if err != nil {
		s.logger.Error("failed to rebuild user aggregate", "error", err, "user_id", record.ID)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Update(ctx, store.NewUserRecord(user))
	})
	if err != nil {
		s.logger.Error("failed to persist refresh token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResult{
		UserID:       user.ID,
		FullName:     user.FullName(),
		Email:        user.Email.String(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens implements AuthService.RefreshTokens.
// A token that does not match the stored one, or whose expiry is at or
// before now, is rejected; both cases look identical to the caller.
func (s *AuthServiceImpl) RefreshTokens(
	ctx context.Context,
	userID uuid.UUID,
	refreshToken string,
) (*AuthResult, error) {
	record, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrInvalidRefreshToken
		}
		s.logger.Error("failed to look up user for refresh", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to refresh tokens: %w", err)
	}

	now := s.timeFunc()
	stored := record.RefreshToken
	expiry := record.RefreshTokenExpiresAt
	if stored == nil || expiry == nil || *stored != refreshToken || !expiry.After(now) {
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := record.ToDomain()
	if err != nil {
		s.logger.Error("failed to rebuild user aggregate", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to refresh tokens: %w", err)
	}

	accessToken, newRefreshToken, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Update(ctx, store.NewUserRecord(user))
	})
	if err != nil {
		s.logger.Error("failed to persist rotated refresh token", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to refresh tokens: %w", err)
	}

	s.logger.Info("tokens refreshed", "user_id", userID)
	return &AuthResult{
		UserID:       user.ID,
		FullName:     user.FullName(),
		Email:        user.Email.String(),
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// issueTokens generates an access and refresh token pair and stores the
// refresh token on the aggregate with its expiry.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *domain.User) (string, string, error) {
	accessToken, err := s.tokens.GenerateAccessToken(
		ctx, user.ID, user.FullName(), user.Email.String(), user.Role)
	if err != nil {
		s.logger.Error("failed to generate access token", "error", err, "user_id", user.ID)
		return "", "", fmt.Errorf("failed to issue tokens: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		s.logger.Error("failed to generate refresh token", "error", err, "user_id", user.ID)
		return "", "", fmt.Errorf("failed to issue tokens: %w", err)
	}

	user.SetRefreshToken(refreshToken, s.timeFunc().Add(s.tokens.RefreshTokenLifetime()).UTC())
	user.UpdatedAt = s.timeFunc().UTC()
	return accessToken, refreshToken, nil
}

// publishEvents delivers recorded events after a successful commit and
// clears the recorder. The write cannot be undone, so a publish failure
// is logged and surfaced.
func (s *AuthServiceImpl) publishEvents(ctx context.Context, user *domain.User) error {
	batch := user.DomainEvents()
	user.ClearDomainEvents()

	if err := s.publisher.Publish(ctx, batch); err != nil {
		s.logger.Error("failed to publish domain events",
			"error", err,
			"user_id", user.ID,
			"event_count", len(batch))
		return fmt.Errorf("registration committed but event publication failed: %w", err)
	}
	return nil
}
