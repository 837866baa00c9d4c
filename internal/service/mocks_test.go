package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/store"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]store.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.UserRecord), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*store.UserRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.UserRecord), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*store.UserRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.UserRecord), args.Error(1)
}

func (m *MockUserStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *store.UserRecord) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Update(ctx context.Context, user *store.UserRecord) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserStore) AddTaskList(ctx context.Context, userID uuid.UUID, list *store.TaskListRecord) error {
	args := m.Called(ctx, userID, list)
	return args.Error(0)
}

func (m *MockUserStore) UpdateTaskList(ctx context.Context, userID uuid.UUID, list *store.TaskListRecord) error {
	args := m.Called(ctx, userID, list)
	return args.Error(0)
}

func (m *MockUserStore) DeleteTaskList(ctx context.Context, userID, listID uuid.UUID) error {
	args := m.Called(ctx, userID, listID)
	return args.Error(0)
}

func (m *MockUserStore) AddTaskItem(ctx context.Context, userID, listID uuid.UUID, item *store.TaskItemRecord) error {
	args := m.Called(ctx, userID, listID, item)
	return args.Error(0)
}

func (m *MockUserStore) UpdateTaskItem(ctx context.Context, userID, listID uuid.UUID, item *store.TaskItemRecord) error {
	args := m.Called(ctx, userID, listID, item)
	return args.Error(0)
}

func (m *MockUserStore) DeleteTaskItem(ctx context.Context, userID, listID, itemID uuid.UUID) error {
	args := m.Called(ctx, userID, listID, itemID)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	// Transaction binding is transparent in unit tests.
	return m
}

// MockPasswordService mocks the auth.PasswordService interface
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Verify(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// MockPublisher mocks the events.Publisher interface
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, batch []domain.Event) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// passthroughTx replaces store.RunInTransaction in unit tests: the unit
// of work runs with a nil transaction, which the mock store ignores.
func passthroughTx(ctx context.Context, _ *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

// failingTx simulates a transaction that never commits.
func failingTx(err error) func(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return func(context.Context, *sql.DB, store.TxFn) error {
		return err
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
