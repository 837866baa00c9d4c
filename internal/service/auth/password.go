package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes plaintext passwords and verifies candidates
// against stored hashes.
type PasswordService interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify compares a stored hash with a plaintext candidate.
	// Returns nil on match, or an error on mismatch.
	Verify(hashedPassword, password string) error
}

// BcryptPasswordService implements PasswordService using bcrypt.
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a BcryptPasswordService with the given
// cost factor. Costs outside bcrypt's supported range fall back to the
// library default.
func NewBcryptPasswordService(cost int) *BcryptPasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordService{cost: cost}
}

var _ PasswordService = (*BcryptPasswordService)(nil)

// Hash implements PasswordService.Hash.
func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify implements PasswordService.Verify.
func (s *BcryptPasswordService) Verify(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
