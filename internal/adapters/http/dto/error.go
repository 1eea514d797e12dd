package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document. Validation failures carry
// field-level entries under Errors.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail pinpoints a single invalid field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusTable maps each domain sentinel onto its HTTP status. Services
// classify kernel errors into these sentinels before they reach the
// transport, so field failures arrive as ErrValidation and archived or
// stale writes as ErrConflict. Order matters only for errors wrapping
// several sentinels, which does not happen in practice.
var statusTable = []struct {
	class  error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

func statusFor(err error) int {
	for _, entry := range statusTable {
		if errors.Is(err, entry.class) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem document for err: the domain sentinel
// decides the status, the request URI becomes the instance, and validation
// field errors expand into Errors.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse renders err as a problem document on w. An encoding
// failure is only logged; the status line is already out by then.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "encoding problem response", slog.Any("error", encErr))
	}
}

// fieldDetails expands validation fields into body.<field> entries. Keys are
// sorted so responses are stable across map iteration order.
func fieldDetails(fields map[string]string) []ErrorDetail {
	names := slices.Sorted(maps.Keys(fields))

	details := make([]ErrorDetail, len(names))
	for i, name := range names {
		details[i] = ErrorDetail{
			Location: "body." + name,
			Message:  fields[name],
		}
	}
	return details
}
