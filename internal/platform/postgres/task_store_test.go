package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasktrack/api/internal/domain"
	"github.com/tasktrack/api/internal/store"
)

// mockDBTX implements store.DBTX for exercising store logic that does not
// need real rows back from the database.
type mockDBTX struct {
	execResult sql.Result
	execErr    error
	lastQuery  string
	lastArgs   []any
}

func (m *mockDBTX) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	m.lastQuery = query
	m.lastArgs = args
	return m.execResult, m.execErr
}

func (m *mockDBTX) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return nil, errors.New("not supported in mock")
}

func (m *mockDBTX) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("not supported in mock")
}

func (m *mockDBTX) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

// mockResult implements sql.Result with a fixed affected-row count.
type mockResult struct {
	rowsAffected int64
}

func (r mockResult) LastInsertId() (int64, error) { return 0, nil }
func (r mockResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

func TestNewTaskStore(t *testing.T) {
	t.Run("nil db panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTaskStore(nil, nil)
		})
	})

	t.Run("nil logger uses default", func(t *testing.T) {
		s := NewTaskStore(&mockDBTX{}, nil)
		require.NotNil(t, s)
		assert.NotNil(t, s.logger)
	})
}

func TestTaskStore_Update(t *testing.T) {
	tests := []struct {
		name    string
		task    domain.Task
		db      *mockDBTX
		wantErr error
	}{
		{
			name: "row updated",
			task: domain.Task{ID: 1, UserID: 2, Title: "T", Status: "DONE"},
			db:   &mockDBTX{execResult: mockResult{rowsAffected: 1}},
		},
		{
			name:    "no matching row maps to not found",
			task:    domain.Task{ID: 1, UserID: 2, Title: "T", Status: "DONE"},
			db:      &mockDBTX{execResult: mockResult{rowsAffected: 0}},
			wantErr: store.ErrTaskNotFound,
		},
		{
			name:    "validation failure before query",
			task:    domain.Task{ID: 1, UserID: 2, Title: ""},
			db:      &mockDBTX{},
			wantErr: domain.ErrEmptyTaskTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTaskStore(tt.db, nil)
			task := tt.task

			err := s.Update(context.Background(), &task)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			// Both the task ID and the owner ID must appear as bind
			// parameters: ownership scoping lives in the statement itself.
			assert.Contains(t, tt.db.lastQuery, "user_id")
			assert.Contains(t, tt.db.lastArgs, task.ID)
			assert.Contains(t, tt.db.lastArgs, task.UserID)
		})
	}
}

func TestTaskStore_Delete(t *testing.T) {
	tests := []struct {
		name    string
		db      *mockDBTX
		wantErr error
	}{
		{
			name: "row deleted",
			db:   &mockDBTX{execResult: mockResult{rowsAffected: 1}},
		},
		{
			name:    "no matching row maps to not found",
			db:      &mockDBTX{execResult: mockResult{rowsAffected: 0}},
			wantErr: store.ErrTaskNotFound,
		},
		{
			name:    "driver error propagates",
			db:      &mockDBTX{execErr: errors.New("connection reset")},
			wantErr: nil, // checked separately below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTaskStore(tt.db, nil)

			err := s.Delete(context.Background(), 5, 9)
			if tt.db.execErr != nil {
				assert.ErrorContains(t, err, "connection reset")
				return
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []any{int64(5), int64(9)}, tt.db.lastArgs)
		})
	}
}
