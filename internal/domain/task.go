package domain

import (
	"errors"
	"time"
)

// Task validation errors
var (
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrEmptyTaskOwner = errors.New("task must have an owner")
)

// Task represents a single to-do item owned by exactly one user. The status
// field is free-form; callers conventionally use values like "TO_DO",
// "IN_PROGRESS" and "DONE" but no transition graph is enforced.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// Returns an error if validation fails.
func NewTask(userID int64, title, description, status string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.UserID == 0 {
		return ErrEmptyTaskOwner
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}
