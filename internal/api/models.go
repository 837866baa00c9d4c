package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Name, last name and email limits mirror the domain value objects; the
// domain performs the authoritative validation after normalization.
type RegisterRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	UserID       uuid.UUID `json:"user_id"       validate:"required"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
}

// AuthResponse is the successful response for all authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// CreateUserRequest defines the payload for creating a user directly.
type CreateUserRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

// UpdateUserRequest defines the payload for replacing a user's profile.
type UpdateUserRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	LastName string `json:"last_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

// UserResponse is the read projection of a user.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

// CreateTaskListRequest defines the payload for creating a task list.
type CreateTaskListRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateTaskListRequest defines the payload for renaming a task list.
type UpdateTaskListRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// TaskListResponse is the read projection of a task list with its items.
type TaskListResponse struct {
	ID    uuid.UUID          `json:"id"`
	Name  string             `json:"name"`
	Items []TaskItemResponse `json:"items"`
}

// CreateTaskItemRequest defines the payload for adding a task item.
type CreateTaskItemRequest struct {
	Description string `json:"description" validate:"required,max=600"`
}

// UpdateTaskItemRequest defines the payload for replacing a task item.
type UpdateTaskItemRequest struct {
	Description string `json:"description" validate:"required,max=600"`
	IsCompleted bool   `json:"is_completed"`
}

// TaskItemResponse is the read projection of a task item.
type TaskItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
}
