package store

import (
	"errors"
	"fmt"
)

// Common store errors. Entity-specific errors wrap the generic ones so
// callers can match either level with errors.Is.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an operation would violate a
	// uniqueness constraint.
	ErrDuplicate = errors.New("record already exists")

	// ErrInvalidRecord is returned when a record violates a database
	// constraint other than uniqueness (foreign key, not null, check).
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTaskListNotFound indicates the requested task list does not exist
	// under the addressed user.
	ErrTaskListNotFound = fmt.Errorf("%w: task list", ErrNotFound)

	// ErrTaskItemNotFound indicates the requested task item does not exist
	// under the addressed task list.
	ErrTaskItemNotFound = fmt.Errorf("%w: task item", ErrNotFound)

	// ErrEmailExists indicates a user with the given email already exists.
	// The users.email unique index is the authority; a race between two
	// registrations surfaces as this error from the losing insert.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFound reports whether err is any kind of "not found" store error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether err is any kind of uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsInvalidRecord reports whether err is a non-uniqueness constraint violation.
func IsInvalidRecord(err error) bool {
	return errors.Is(err, ErrInvalidRecord)
}

// StoreError adds entity and operation context to a lower-level error.
type StoreError struct {
	Entity    string // e.g. "user", "task_list"
	Operation string // e.g. "create", "delete"
	Err       error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap supports errors.Is/errors.As on the wrapped error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError wrapping err.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
