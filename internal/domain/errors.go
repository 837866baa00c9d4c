// Package domain defines the core business entities, value objects,
// domain events and the error taxonomy shared by all layers.
package domain

import "fmt"

// ErrorKind classifies a domain error so boundary layers can map it to
// a transport-level response without inspecting codes.
type ErrorKind int

const (
	// KindValidation indicates an input field failed value-object or
	// command-level validation.
	KindValidation ErrorKind = iota

	// KindNotFound indicates the requested aggregate or nested entity
	// does not exist.
	KindNotFound

	// KindConflict indicates a uniqueness violation, e.g. a duplicate email.
	KindConflict

	// KindUnauthorized indicates invalid credentials or an invalid or
	// expired refresh token.
	KindUnauthorized
)

// Error is a typed, expected domain failure. Handlers return these instead
// of panicking; anything that is not a *domain.Error is treated as an
// unexpected internal error by the boundary layer.
type Error struct {
	Kind    ErrorKind
	Code    string // machine-readable, e.g. "User.Email"
	Message string // human-readable
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError creates a validation error with the given field code
// and message. Value-object factories are the main producers.
func NewValidationError(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

// Sentinel domain errors. Pointer identity makes these work with errors.Is.
var (
	// ErrUserNotFound is returned when the user with the provided id does not exist.
	ErrUserNotFound = &Error{
		Kind:    KindNotFound,
		Code:    "User.NotFound",
		Message: "the user with the provided id was not found",
	}

	// ErrTaskListNotFound is returned when the task list with the provided id
	// does not exist under the addressed user.
	ErrTaskListNotFound = &Error{
		Kind:    KindNotFound,
		Code:    "TaskList.NotFound",
		Message: "the task list with the provided id was not found",
	}

	// ErrTaskItemNotFound is returned when the task item with the provided id
	// does not exist under the addressed task list.
	ErrTaskItemNotFound = &Error{
		Kind:    KindNotFound,
		Code:    "TaskItem.NotFound",
		Message: "the task item with the provided id was not found",
	}

	// ErrDuplicatedEmail is returned on registration with an email that is
	// already taken.
	ErrDuplicatedEmail = &Error{
		Kind:    KindConflict,
		Code:    "User.DuplicatedEmail",
		Message: "the email is already registered",
	}

	// ErrInvalidCredentials is returned on login failure. Deliberately the
	// same error for "unknown email" and "wrong password" so the endpoint
	// cannot be used to enumerate registered emails.
	ErrInvalidCredentials = &Error{
		Kind:    KindUnauthorized,
		Code:    "User.InvalidCredentials",
		Message: "invalid credentials",
	}

	// ErrInvalidRefreshToken is returned when the presented refresh token
	// does not match the stored one or has expired.
	ErrInvalidRefreshToken = &Error{
		Kind:    KindUnauthorized,
		Code:    "User.InvalidRefreshToken",
		Message: "refresh token is invalid or expired",
	}
)
