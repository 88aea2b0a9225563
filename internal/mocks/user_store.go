package mocks

import (
	"context"
	"sync"

	"github.com/tasktrack/api/internal/domain"
	"github.com/tasktrack/api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore.
// It enforces username uniqueness the way the real store's database
// constraint does.
type MockUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User

	// CreateErr, when set, is returned from Create before any state change.
	CreateErr error
	// GetErr, when set, is returned from both lookup methods.
	GetErr error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		nextID: 1,
		users:  make(map[int64]domain.User),
	}
}

// Create implements store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

// GetByID implements store.UserStore.GetByID
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}
