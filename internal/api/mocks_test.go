package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kelist/kelist-api/internal/service"
	"github.com/kelist/kelist-api/internal/service/auth"
)

// MockAuthService is a testify mock for auth.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(
	ctx context.Context,
	name, lastName, email, password string,
) (*auth.AuthResult, error) {
	args := m.Called(ctx, name, lastName, email, password)
	if result := args.Get(0); result != nil {
		return result.(*auth.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if result := args.Get(0); result != nil {
		return result.(*auth.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) RefreshTokens(
	ctx context.Context,
	userID uuid.UUID,
	refreshToken string,
) (*auth.AuthResult, error) {
	args := m.Called(ctx, userID, refreshToken)
	if result := args.Get(0); result != nil {
		return result.(*auth.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserService is a testify mock for service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]service.UserResult, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]service.UserResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*service.UserResult, error) {
	args := m.Called(ctx, userID)
	if result := args.Get(0); result != nil {
		return result.(*service.UserResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) CreateUser(
	ctx context.Context,
	name, lastName, email, password string,
) (*service.UserResult, error) {
	args := m.Called(ctx, name, lastName, email, password)
	if result := args.Get(0); result != nil {
		return result.(*service.UserResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) UpdateUser(
	ctx context.Context,
	userID uuid.UUID,
	name, lastName, email, password string,
) (*service.UserResult, error) {
	args := m.Called(ctx, userID, name, lastName, email, password)
	if result := args.Get(0); result != nil {
		return result.(*service.UserResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTaskListService is a testify mock for service.TaskListService.
type MockTaskListService struct {
	mock.Mock
}

func (m *MockTaskListService) ListTaskLists(
	ctx context.Context,
	userID uuid.UUID,
) ([]service.TaskListResult, error) {
	args := m.Called(ctx, userID)
	if result := args.Get(0); result != nil {
		return result.([]service.TaskListResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskListService) CreateTaskList(
	ctx context.Context,
	userID uuid.UUID,
	name string,
) (*service.TaskListResult, error) {
	args := m.Called(ctx, userID, name)
	if result := args.Get(0); result != nil {
		return result.(*service.TaskListResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskListService) UpdateTaskList(
	ctx context.Context,
	userID, listID uuid.UUID,
	name string,
) (*service.TaskListResult, error) {
	args := m.Called(ctx, userID, listID, name)
	if result := args.Get(0); result != nil {
		return result.(*service.TaskListResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskListService) DeleteTaskList(ctx context.Context, userID, listID uuid.UUID) error {
	args := m.Called(ctx, userID, listID)
	return args.Error(0)
}

// MockTaskItemService is a testify mock for service.TaskItemService.
type MockTaskItemService struct {
	mock.Mock
}

func (m *MockTaskItemService) ListTaskItems(
	ctx context.Context,
	userID, listID uuid.UUID,
) ([]service.TaskItemResult, error) {
	args := m.Called(ctx, userID, listID)
	if result := args.Get(0); result != nil {
		return result.([]service.TaskItemResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskItemService) CreateTaskItem(
	ctx context.Context,
	userID, listID uuid.UUID,
	description string,
) (*service.TaskItemResult, error) {
	args := m.Called(ctx, userID, listID, description)
	if result := args.Get(0); result != nil {
		return result.(*service.TaskItemResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskItemService) UpdateTaskItem(
	ctx context.Context,
	userID, listID, itemID uuid.UUID,
	description string,
	isCompleted bool,
) (*service.TaskItemResult, error) {
	args := m.Called(ctx, userID, listID, itemID, description, isCompleted)
	if result := args.Get(0); result != nil {
		return result.(*service.TaskItemResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskItemService) DeleteTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID) error {
	args := m.Called(ctx, userID, listID, itemID)
	return args.Error(0)
}
