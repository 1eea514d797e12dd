package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// maxBodyBytes caps JSON request bodies at 1 MB.
const maxBodyBytes = 1 << 20

// parseUUID extracts a UUID path parameter from the chi URL params.
func parseUUID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, &domain.ValidationError{
			Fields: map[string]string{param: "must be a valid UUID"},
		}
	}
	return id, nil
}

// parseTaskFilter builds a task.Filter from the list endpoint's query
// parameters: include_archived (boolean) and slug (exact match).
func parseTaskFilter(r *http.Request) (task.Filter, error) {
	q := r.URL.Query()
	filter := task.Filter{Slug: q.Get("slug")}

	raw := q.Get("include_archived")
	if raw == "" {
		return filter, nil
	}

	include, err := strconv.ParseBool(raw)
	if err != nil {
		return task.Filter{}, &domain.ValidationError{
			Fields: map[string]string{"include_archived": fmt.Sprintf("must be a boolean, got %q", raw)},
		}
	}
	filter.IncludeArchived = include

	return filter, nil
}

// validatable is implemented by request DTOs that check their own fields.
type validatable interface {
	Validate() error
}

// readJSON decodes the request body into dst and validates it. The body is
// capped at maxBodyBytes. The returned error is suitable for
// dto.WriteErrorResponse.
func readJSON(w http.ResponseWriter, r *http.Request, dst validatable) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		}
	}
	return dst.Validate()
}

// decodeTaskCreate reads a CreateTaskRequest and maps it to a service input.
// Writes an error response and reports false on failure.
func decodeTaskCreate(w http.ResponseWriter, r *http.Request) (ports.CreateTaskInput, bool) {
	var req dto.CreateTaskRequest
	if err := readJSON(w, r, &req); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return ports.CreateTaskInput{}, false
	}
	return ports.CreateTaskInput{
		Title:    req.Title,
		Slug:     req.Slug,
		Notes:    req.Notes,
		Progress: req.Progress,
	}, true
}

// decodeTaskUpdate reads an UpdateTaskRequest and maps it to a service input.
// Writes an error response and reports false on failure.
func decodeTaskUpdate(w http.ResponseWriter, r *http.Request) (ports.UpdateTaskInput, bool) {
	var req dto.UpdateTaskRequest
	if err := readJSON(w, r, &req); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return ports.UpdateTaskInput{}, false
	}
	return ports.UpdateTaskInput{
		Title:    req.Title,
		Notes:    req.Notes,
		Progress: req.Progress,
	}, true
}

// decodeBulkProgress reads a BulkProgressRequest and maps it to a service
// input. Each ID is parsed here so a malformed entry is reported under its
// ids[i] key. Writes an error response and reports false on failure.
func decodeBulkProgress(w http.ResponseWriter, r *http.Request) (ports.BulkProgressInput, bool) {
	var req dto.BulkProgressRequest
	if err := readJSON(w, r, &req); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return ports.BulkProgressInput{}, false
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	bad := make(map[string]string)
	for i, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			bad[fmt.Sprintf("ids[%d]", i)] = "must be a valid UUID"
			continue
		}
		ids = append(ids, id)
	}
	if len(bad) > 0 {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: bad})
		return ports.BulkProgressInput{}, false
	}

	return ports.BulkProgressInput{
		IDs:      ids,
		Progress: req.Progress,
	}, true
}

// writeJSON renders v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response body", slog.Any("error", err))
	}
}
