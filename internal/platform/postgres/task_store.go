package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tasktrack/api/internal/domain"
	"github.com/tasktrack/api/internal/platform/logger"
	"github.com/tasktrack/api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend. Every statement is scoped by owner so a
// task can never be read or mutated through another user's requests.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// ListByOwner implements store.TaskStore.ListByOwner
// Returns an empty slice, never nil, when the user owns no tasks.
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, description, status, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed tasks",
		slog.Int64("owner_id", ownerID),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// Create implements store.TaskStore.Create
// It inserts the task and fills in the generated ID.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", task.UserID))
		return err
	}

	query := `
		INSERT INTO tasks (user_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("task owner does not exist",
				slog.Int64("owner_id", task.UserID))
			return fmt.Errorf("%w: owner %d", store.ErrUserNotFound, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", task.UserID))
		return err
	}

	log.Info("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Int64("owner_id", task.UserID))
	return nil
}

// Update implements store.TaskStore.Update
// The statement matches on both task ID and owner ID; zero rows affected
// means the task is missing or belongs to someone else, both reported as
// store.ErrTaskNotFound.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID),
			slog.Int64("owner_id", task.UserID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for update",
			slog.Int64("task_id", task.ID),
			slog.Int64("owner_id", task.UserID))
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully",
		slog.Int64("task_id", task.ID),
		slog.Int64("owner_id", task.UserID))
	return nil
}

// Delete implements store.TaskStore.Delete
// Same ownership scoping as Update: zero rows affected is reported as
// store.ErrTaskNotFound.
func (s *TaskStore) Delete(ctx context.Context, taskID, ownerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID),
			slog.Int64("owner_id", ownerID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("task not found for delete",
			slog.Int64("task_id", taskID),
			slog.Int64("owner_id", ownerID))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully",
		slog.Int64("task_id", taskID),
		slog.Int64("owner_id", ownerID))
	return nil
}
