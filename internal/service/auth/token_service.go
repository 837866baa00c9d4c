package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService defines operations for issuing and validating auth tokens.
//
// Access tokens are signed JWTs carrying identity claims. Refresh tokens
// are opaque random strings: they carry no claims and are only meaningful
// against the copy stored on the user row, which makes them revocable by
// a simple update.
type TokenService interface {
	// GenerateAccessToken creates a signed JWT access token for the user.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, fullName, email, role string) (string, error)

	// ValidateAccessToken validates an access token string and extracts
	// the claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a new opaque refresh token.
	GenerateRefreshToken() (string, error)

	// RefreshTokenLifetime returns how long issued refresh tokens live.
	RefreshTokenLifetime() time.Duration
}

// Claims is the identity extracted from a validated access token.
type Claims struct {
	// UserID is the user the token was issued for (the sub claim).
	UserID uuid.UUID

	// FullName is the user's display name at issue time.
	FullName string

	// Email is the user's email at issue time.
	Email string

	// Role is the user's role at issue time.
	Role string

	// Standard registered JWT claims
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
