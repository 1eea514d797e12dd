// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Slug       string  `json:"slug"`
	Notes      string  `json:"notes,omitempty"`
	Progress   int     `json:"progress"`
	Version    int     `json:"version"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
	ArchivedAt *string `json:"archived_at,omitempty"`
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskResponse converts a domain Task snapshot to an HTTP response DTO.
// Timestamps are rendered in UTC RFC 3339; archived_at is present only for
// archived tasks.
func ToTaskResponse(t task.Task) TaskResponse {
	meta := t.Meta()

	resp := TaskResponse{
		ID:        meta.ID().String(),
		Title:     t.Title().Unwrap(),
		Slug:      t.Slug().Unwrap(),
		Notes:     t.Notes().Unwrap(),
		Progress:  t.Progress().Unwrap(),
		Version:   meta.Version(),
		CreatedAt: meta.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt: meta.UpdatedAt().UTC().Format(time.RFC3339),
	}

	if at, ok := meta.ArchivedAt().Unwrap(); ok {
		s := at.UTC().Format(time.RFC3339)
		resp.ArchivedAt = &s
	}

	return resp
}

// ToTaskListResponse converts a slice of domain Task snapshots to an HTTP
// list response DTO.
func ToTaskListResponse(tasks []task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(tasks[i])
	}
	return TaskListResponse{
		Tasks: items,
		Count: len(items),
	}
}

// BulkProgressResponse represents the result of a bulk progress operation.
// It includes both successful updates and per-task errors.
type BulkProgressResponse struct {
	Updated   []TaskResponse          `json:"updated"`
	Errors    []BulkProgressErrorItem `json:"errors"`
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// BulkProgressErrorItem represents a single failed task within a bulk operation.
type BulkProgressErrorItem struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// ToBulkProgressResponse converts a ports.BulkProgressResult to an HTTP
// response DTO.
func ToBulkProgressResponse(result *ports.BulkProgressResult) BulkProgressResponse {
	updated := make([]TaskResponse, len(result.Updated))
	for i := range result.Updated {
		updated[i] = ToTaskResponse(result.Updated[i])
	}

	errs := make([]BulkProgressErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkProgressErrorItem{
			TaskID:  e.TaskID.String(),
			Message: e.Err.Error(),
		}
	}

	total := len(result.Updated) + len(result.Errors)
	return BulkProgressResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     total,
		Succeeded: len(result.Updated),
		Failed:    len(result.Errors),
	}
}
