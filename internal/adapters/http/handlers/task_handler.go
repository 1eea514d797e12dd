// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// TaskHandler handles HTTP requests for task lifecycle operations.
type TaskHandler struct {
	svc ports.TaskService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTaskFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tasks, err := h.svc.ListTasks(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeTaskCreate(w, r)
	if !ok {
		return
	}

	created, err := h.svc.CreateTask(r.Context(), input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToTaskResponse(created))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	input, ok := decodeTaskUpdate(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(updated))
}

// ArchiveTask handles POST /api/v1/tasks/{id}/archive.
func (h *TaskHandler) ArchiveTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	archived, err := h.svc.ArchiveTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(archived))
}

// UnarchiveTask handles POST /api/v1/tasks/{id}/unarchive.
func (h *TaskHandler) UnarchiveTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	restored, err := h.svc.UnarchiveTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(restored))
}

// BulkSetProgress handles POST /api/v1/tasks/bulk/progress.
func (h *TaskHandler) BulkSetProgress(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeBulkProgress(w, r)
	if !ok {
		return
	}

	result, err := h.svc.BulkSetProgress(r.Context(), input)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkProgressResponse(result))
}
