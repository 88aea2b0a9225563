package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasktrack/api/internal/api/shared"
	"github.com/tasktrack/api/internal/mocks"
	"github.com/tasktrack/api/internal/service/tasks"
)

// newTaskRouter mounts the task routes behind a stub middleware that
// injects the given owner ID, standing in for the real auth middleware.
func newTaskRouter(handler *TaskHandler, ownerID int64) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if ownerID != 0 {
				req = req.WithContext(shared.WithUserID(req.Context(), ownerID))
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/tasks", handler.List)
	r.Post("/api/tasks", handler.Create)
	r.Put("/api/tasks/{id}", handler.Update)
	r.Delete("/api/tasks/{id}", handler.Delete)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeTasks(t *testing.T, recorder *httptest.ResponseRecorder) []TaskResponse {
	t.Helper()
	var taskList []TaskResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&taskList))
	return taskList
}

func TestTaskHandler_ListEmpty(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(tasks.NewService(mocks.NewMockTaskStore(), nil))
	router := newTaskRouter(handler, 1)

	recorder := doJSON(t, router, "GET", "/api/tasks", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Empty set must serialize as [], not null.
	assert.JSONEq(t, "[]", recorder.Body.String())
}

func TestTaskHandler_CreateThenList(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(tasks.NewService(mocks.NewMockTaskStore(), nil))
	router := newTaskRouter(handler, 1)

	created := doJSON(t, router, "POST", "/api/tasks", TaskRequest{
		Title:       "T",
		Description: "D",
		Status:      "TODO",
	})
	require.Equal(t, http.StatusOK, created.Code)

	var msg shared.MessageResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&msg))
	assert.Equal(t, "Task added successfully!", msg.Message)

	listed := doJSON(t, router, "GET", "/api/tasks", nil)
	require.Equal(t, http.StatusOK, listed.Code)

	taskList := decodeTasks(t, listed)
	require.Len(t, taskList, 1)
	assert.Equal(t, "T", taskList[0].Title)
	assert.Equal(t, "D", taskList[0].Description)
	assert.Equal(t, "TODO", taskList[0].Status)
	assert.Equal(t, int64(1), taskList[0].UserID)
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(tasks.NewService(mocks.NewMockTaskStore(), nil))
	router := newTaskRouter(handler, 1)

	recorder := doJSON(t, router, "POST", "/api/tasks", TaskRequest{Description: "no title"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTaskHandler_OwnerIsolation(t *testing.T) {
	t.Parallel()

	taskStore := mocks.NewMockTaskStore()
	service := tasks.NewService(taskStore, nil)
	handler := NewTaskHandler(service)

	aliceRouter := newTaskRouter(handler, 1)
	bobRouter := newTaskRouter(handler, 2)

	created := doJSON(t, aliceRouter, "POST", "/api/tasks", TaskRequest{Title: "alice's task"})
	require.Equal(t, http.StatusOK, created.Code)

	t.Run("other user lists empty set", func(t *testing.T) {
		listed := doJSON(t, bobRouter, "GET", "/api/tasks", nil)
		require.Equal(t, http.StatusOK, listed.Code)
		assert.Empty(t, decodeTasks(t, listed))
	})

	t.Run("other user cannot update", func(t *testing.T) {
		recorder := doJSON(t, bobRouter, "PUT", "/api/tasks/1", TaskRequest{Title: "hijacked"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		recorder := doJSON(t, bobRouter, "DELETE", "/api/tasks/1", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("owner still sees original task", func(t *testing.T) {
		listed := doJSON(t, aliceRouter, "GET", "/api/tasks", nil)
		taskList := decodeTasks(t, listed)
		require.Len(t, taskList, 1)
		assert.Equal(t, "alice's task", taskList[0].Title)
	})
}

func TestTaskHandler_Update(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(tasks.NewService(mocks.NewMockTaskStore(), nil))
	router := newTaskRouter(handler, 1)

	created := doJSON(t, router, "POST", "/api/tasks", TaskRequest{Title: "T", Status: "TO_DO"})
	require.Equal(t, http.StatusOK, created.Code)

	t.Run("successful update", func(t *testing.T) {
		recorder := doJSON(t, router, "PUT", "/api/tasks/1", TaskRequest{
			Title:  "T2",
			Status: "DONE",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		listed := doJSON(t, router, "GET", "/api/tasks", nil)
		taskList := decodeTasks(t, listed)
		require.Len(t, taskList, 1)
		assert.Equal(t, "T2", taskList[0].Title)
		assert.Equal(t, "DONE", taskList[0].Status)
	})

	t.Run("missing task", func(t *testing.T) {
		recorder := doJSON(t, router, "PUT", "/api/tasks/42", TaskRequest{Title: "T"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
		assert.Equal(t, "Task not found!", resp.Error)
	})

	t.Run("invalid id", func(t *testing.T) {
		recorder := doJSON(t, router, "PUT", "/api/tasks/abc", TaskRequest{Title: "T"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(tasks.NewService(mocks.NewMockTaskStore(), nil))
	router := newTaskRouter(handler, 1)

	created := doJSON(t, router, "POST", "/api/tasks", TaskRequest{Title: "T"})
	require.Equal(t, http.StatusOK, created.Code)

	recorder := doJSON(t, router, "DELETE", "/api/tasks/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var msg shared.MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&msg))
	assert.Equal(t, "Task deleted successfully!", msg.Message)

	// Deleting again reports not found.
	again := doJSON(t, router, "DELETE", "/api/tasks/1", nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestTaskHandler_MissingOwner(t *testing.T) {
	t.Parallel()

	handler := NewTaskHandler(tasks.NewService(mocks.NewMockTaskStore(), nil))
	// ownerID 0 means the stub middleware injects nothing.
	router := newTaskRouter(handler, 0)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{"GET", "/api/tasks"},
		{"POST", "/api/tasks"},
		{"PUT", "/api/tasks/1"},
		{"DELETE", "/api/tasks/1"},
	} {
		t.Run(fmt.Sprintf("%s %s", tc.method, tc.path), func(t *testing.T) {
			recorder := doJSON(t, router, tc.method, tc.path, TaskRequest{Title: "T"})
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
