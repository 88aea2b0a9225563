package store

import (
	"context"

	"github.com/tasktrack/api/internal/domain"
)

// TaskStore defines the interface for task data persistence. Every read and
// mutation is scoped by owner: no operation can observe or change a task
// that belongs to a different user.
type TaskStore interface {
	// ListByOwner retrieves all tasks owned by the given user.
	// Returns an empty slice, never nil, when the user has no tasks.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)

	// Create saves a new task and fills in the generated ID.
	Create(ctx context.Context, task *domain.Task) error

	// Update replaces the title, description and status of the task with the
	// given ID, provided it belongs to the task's owner.
	// Returns ErrTaskNotFound if no row matched (task missing or owned by
	// someone else).
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID, provided it belongs to the
	// given owner. Returns ErrTaskNotFound if no row matched.
	Delete(ctx context.Context, taskID, ownerID int64) error
}
