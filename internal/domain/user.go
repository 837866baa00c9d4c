package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultRole is assigned to users that are created without an explicit role.
const DefaultRole = "User"

// RefreshToken pairs an opaque refresh token with its expiry. Modelling the
// pair as one optional composite makes "token implies expiry" structurally
// impossible to violate.
type RefreshToken struct {
	Value     string
	ExpiresAt time.Time
}

// User is the aggregate root of the system. It owns its task lists
// exclusively; deleting a user cascades to lists and items at the
// persistence layer.
type User struct {
	Recorder

	ID             uuid.UUID
	Name           PersonName
	LastName       LastName
	Email          Email
	HashedPassword string
	Role           string
	RefreshToken   *RefreshToken
	CreatedAt      time.Time
	UpdatedAt      time.Time
	TaskLists      []TaskList
}

// NewUser creates a user from already-validated value objects. The caller
// is responsible for hashing the password; the domain never sees plaintext.
func NewUser(id uuid.UUID, name PersonName, lastName LastName, email Email, hashedPassword string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             id,
		Name:           name,
		LastName:       lastName,
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           DefaultRole,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// FullName joins the first and last name.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.Name, u.LastName)
}

// SetRefreshToken overwrites the stored refresh token pair unconditionally.
// The caller decides the expiry; no in-the-past guard is applied here.
func (u *User) SetRefreshToken(token string, expiresAt time.Time) {
	u.RefreshToken = &RefreshToken{Value: token, ExpiresAt: expiresAt}
}

// AddTaskList appends a list to the owned collection. List names are not
// unique within a user; no dedup check is performed.
func (u *User) AddTaskList(list TaskList) {
	u.TaskLists = append(u.TaskLists, list)
}

// NotifyCreate records a UserCreatedEvent. The orchestrating handler calls
// this exactly once per registration, before committing, and publishes the
// recorded events only after the commit succeeds.
func (u *User) NotifyCreate() {
	u.Raise(UserCreatedEvent{
		eventMeta: newEventMeta(),
		UserID:    u.ID,
		FullName:  u.FullName(),
		Email:     u.Email.String(),
	})
}

// NotifyUpdate records a UserUpdatedEvent.
func (u *User) NotifyUpdate() {
	u.Raise(UserUpdatedEvent{
		eventMeta: newEventMeta(),
		UserID:    u.ID,
		FullName:  u.FullName(),
		Email:     u.Email.String(),
	})
}

// NotifyDelete records a UserDeletedEvent.
func (u *User) NotifyDelete() {
	u.Raise(UserDeletedEvent{
		eventMeta: newEventMeta(),
		UserID:    u.ID,
		FullName:  u.FullName(),
	})
}
