// Package tasks implements the task operations exposed to authenticated
// users. The service is a thin orchestration layer over store.TaskStore: the
// router's auth middleware has already resolved the owner ID, and the store
// enforces ownership scoping in its statements.
package tasks

import (
	"context"
	"log/slog"

	"github.com/tasktrack/api/internal/domain"
	"github.com/tasktrack/api/internal/platform/logger"
	"github.com/tasktrack/api/internal/store"
)

// Service coordinates task CRUD for an authenticated owner.
type Service struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewService creates a new task Service.
// If logger is nil, a default logger will be used.
func NewService(taskStore store.TaskStore, logger *slog.Logger) *Service {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List returns all tasks owned by the given user, oldest first.
func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.taskStore.ListByOwner(ctx, ownerID)
}

// Create stores a new task for the given owner and returns it with its
// generated ID filled in.
func (s *Service) Create(
	ctx context.Context,
	ownerID int64,
	title, description, status string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(ownerID, title, description, status)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("owner_id", ownerID))
	return task, nil
}

// Update replaces the title, description and status of the owner's task.
// Returns store.ErrTaskNotFound when the task does not exist or belongs to a
// different owner; the two cases are indistinguishable on purpose.
func (s *Service) Update(
	ctx context.Context,
	ownerID, taskID int64,
	title, description, status string,
) error {
	task := &domain.Task{
		ID:          taskID,
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Status:      status,
	}

	return s.taskStore.Update(ctx, task)
}

// Delete removes the owner's task. Same not-found semantics as Update.
func (s *Service) Delete(ctx context.Context, ownerID, taskID int64) error {
	return s.taskStore.Delete(ctx, taskID, ownerID)
}
