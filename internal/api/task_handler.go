package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/tasktrack/api/internal/api/shared"
	"github.com/tasktrack/api/internal/service/tasks"
)

// TaskHandler handles task-related HTTP requests. All routes it serves sit
// behind the auth middleware, so the owner ID is always in the context.
type TaskHandler struct {
	taskService *tasks.Service
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *tasks.Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// List handles GET /api/tasks requests.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access Denied!")
		return
	}

	taskList, err := h.taskService.List(r.Context(), ownerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(taskList))
}

// Create handles POST /api/tasks requests.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access Denied!")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.taskService.Create(r.Context(), ownerID, req.Title, req.Description, req.Status); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Task added successfully!")
}

// Update handles PUT /api/tasks/{id} requests.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access Denied!")
		return
	}

	taskID, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Update(r.Context(), ownerID, taskID, req.Title, req.Description, req.Status); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Task updated successfully!")
}

// Delete handles DELETE /api/tasks/{id} requests.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access Denied!")
		return
	}

	taskID, ok := h.taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), ownerID, taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, "Task deleted successfully!")
}

// decodeTaskRequest decodes and validates a task payload, writing the error
// response itself when the payload is unusable.
func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Title is required")
		return req, false
	}

	return req, true
}

// taskIDFromPath parses the {id} URL parameter, writing the error response
// itself when the value is not a valid task ID.
func (h *TaskHandler) taskIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	taskID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || taskID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return 0, false
	}
	return taskID, true
}
