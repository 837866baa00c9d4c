package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelist/kelist-api/internal/domain"
)

func testRecord(t *testing.T) *UserRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	return &UserRecord{
		ID:             uuid.New(),
		Name:           "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		HashedPassword: "$2a$10$fakefakefakefakefakefake",
		Role:           "Admin",
		CreatedAt:      now.Add(-time.Hour),
		UpdatedAt:      now,
	}
}

func TestUserRecordToDomain(t *testing.T) {
	t.Parallel()

	t.Run("restores the aggregate", func(t *testing.T) {
		t.Parallel()

		rec := testRecord(t)
		user, err := rec.ToDomain()
		require.NoError(t, err)

		assert.Equal(t, rec.ID, user.ID)
		assert.Equal(t, "John", user.Name.String())
		assert.Equal(t, "Doe", user.LastName.String())
		assert.Equal(t, "john.doe@example.com", user.Email.String())
		assert.Equal(t, rec.HashedPassword, user.HashedPassword)
		assert.Equal(t, "Admin", user.Role)
		assert.Equal(t, rec.CreatedAt, user.CreatedAt)
		assert.Equal(t, rec.UpdatedAt, user.UpdatedAt)
		assert.Nil(t, user.RefreshToken)
	})

	t.Run("restores the refresh token pair", func(t *testing.T) {
		t.Parallel()

		rec := testRecord(t)
		token := "refresh-token-value"
		expiresAt := time.Now().UTC().Add(24 * time.Hour)
		rec.RefreshToken = &token
		rec.RefreshTokenExpiresAt = &expiresAt

		user, err := rec.ToDomain()
		require.NoError(t, err)

		require.NotNil(t, user.RefreshToken)
		assert.Equal(t, token, user.RefreshToken.Value)
		assert.Equal(t, expiresAt, user.RefreshToken.ExpiresAt)
	})

	t.Run("rejects corrupt stored data", func(t *testing.T) {
		t.Parallel()

		rec := testRecord(t)
		rec.Email = "not-an-email"

		_, err := rec.ToDomain()
		assert.Error(t, err)
	})
}

func TestNewUserRecordRoundTrip(t *testing.T) {
	t.Parallel()

	name, lastName, email, err := domain.ValidateUserInput("John", "Doe", "john.doe@example.com")
	require.NoError(t, err)

	user := domain.NewUser(uuid.New(), name, lastName, email, "hashed")
	user.SetRefreshToken("refresh-token-value", time.Now().UTC().Add(24*time.Hour))

	rec := NewUserRecord(user)
	assert.Equal(t, user.ID, rec.ID)
	assert.Equal(t, "John Doe", rec.FullName())
	require.NotNil(t, rec.RefreshToken)
	require.NotNil(t, rec.RefreshTokenExpiresAt)
	assert.Equal(t, user.RefreshToken.Value, *rec.RefreshToken)

	restored, err := rec.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Email.String(), restored.Email.String())
	require.NotNil(t, restored.RefreshToken)
	assert.Equal(t, user.RefreshToken.Value, restored.RefreshToken.Value)
}
