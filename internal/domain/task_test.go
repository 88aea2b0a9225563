package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name    string
		userID  int64
		title   string
		wantErr error
	}{
		{name: "valid task", userID: 7, title: "Write report"},
		{name: "missing owner", userID: 0, title: "Write report", wantErr: ErrEmptyTaskOwner},
		{name: "missing title", userID: 7, title: "", wantErr: ErrEmptyTaskTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask(tt.userID, tt.title, "details", "TO_DO")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.userID, task.UserID)
			assert.Equal(t, tt.title, task.Title)
			assert.Equal(t, "TO_DO", task.Status)
			assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		})
	}
}

func TestTaskValidate_FreeFormStatus(t *testing.T) {
	// Status has no enforced enumeration.
	task, err := NewTask(1, "T", "D", "whatever, honestly")
	require.NoError(t, err)
	assert.Equal(t, "whatever, honestly", task.Status)
}
