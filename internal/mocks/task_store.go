package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tasktrack/api/internal/domain"
	"github.com/tasktrack/api/internal/store"
)

// MockTaskStore is an in-memory implementation of store.TaskStore with the
// same owner-scoping semantics as the real store: reads and mutations match
// on (task ID, owner ID), and a miss on either is ErrTaskNotFound.
type MockTaskStore struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]domain.Task

	// Err, when set, is returned from every method.
	Err error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates an empty MockTaskStore.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		nextID: 1,
		tasks:  make(map[int64]domain.Task),
	}
}

// ListByOwner implements store.TaskStore.ListByOwner
func (m *MockTaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := []domain.Task{}
	for _, task := range m.tasks {
		if task.UserID == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// Create implements store.TaskStore.Create
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.Err != nil {
		return m.Err
	}
	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = m.nextID
	m.nextID++
	m.tasks[task.ID] = *task
	return nil
}

// Update implements store.TaskStore.Update
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.Err != nil {
		return m.Err
	}
	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.UpdatedAt = time.Now().UTC()
	m.tasks[task.ID] = existing
	return nil
}

// Delete implements store.TaskStore.Delete
func (m *MockTaskStore) Delete(ctx context.Context, taskID, ownerID int64) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tasks[taskID]
	if !ok || existing.UserID != ownerID {
		return store.ErrTaskNotFound
	}

	delete(m.tasks, taskID)
	return nil
}
