package store

import (
	"fmt"

	"github.com/kelist/kelist-api/internal/domain"
)

// ToDomain rebuilds the domain aggregate from its stored projection.
// Stored values already passed validation on the way in and normalization
// is idempotent, so a factory rejection here means corrupt data rather
// than bad input. Task lists are not carried over; services work on the
// records directly for nested reads.
func (r *UserRecord) ToDomain() (*domain.User, error) {
	name, lastName, email, err := domain.ValidateUserInput(r.Name, r.LastName, r.Email)
	if err != nil {
		return nil, fmt.Errorf("stored user %s failed domain validation: %w", r.ID, err)
	}

	user := domain.NewUser(r.ID, name, lastName, email, r.HashedPassword)
	user.Role = r.Role
	user.CreatedAt = r.CreatedAt
	user.UpdatedAt = r.UpdatedAt
	if r.RefreshToken != nil && r.RefreshTokenExpiresAt != nil {
		user.SetRefreshToken(*r.RefreshToken, *r.RefreshTokenExpiresAt)
	}
	return user, nil
}

// NewUserRecord projects the aggregate root onto its persistence shape.
// Task lists are persisted through the dedicated mutators and are not
// carried here.
func NewUserRecord(user *domain.User) *UserRecord {
	rec := &UserRecord{
		ID:             user.ID,
		Name:           user.Name.String(),
		LastName:       user.LastName.String(),
		Email:          user.Email.String(),
		HashedPassword: user.HashedPassword,
		Role:           user.Role,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
	if user.RefreshToken != nil {
		token := user.RefreshToken.Value
		expiresAt := user.RefreshToken.ExpiresAt
		rec.RefreshToken = &token
		rec.RefreshTokenExpiresAt = &expiresAt
	}
	return rec
}
