package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
)

// maxBulkIDs caps how many tasks one bulk request may address.
const maxBulkIDs = 100

// CreateTaskRequest represents the JSON body for creating a new task.
type CreateTaskRequest struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Notes    string `json:"notes,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// plausible values. Full validation (lengths, slug shape) happens in the
// domain; this is the transport shape check.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.Slug) == "" {
		fields["slug"] = domain.MsgRequired
	}
	if r.Progress < 0 || r.Progress > 100 {
		fields["progress"] = fmt.Sprintf("must be 0-100, got %d", r.Progress)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTaskRequest represents the JSON body for updating an existing task.
// All fields are optional; nil means "do not change this field".
type UpdateTaskRequest struct {
	Title    *string `json:"title,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Progress *int    `json:"progress,omitempty"`
}

// Validate checks that any provided fields have plausible values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		fields["progress"] = fmt.Sprintf("must be 0-100, got %d", *r.Progress)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// BulkProgressRequest represents the JSON body for moving the progress of
// many tasks at once.
type BulkProgressRequest struct {
	IDs      []string `json:"ids"`
	Progress int      `json:"progress"`
}

// Validate checks the request shape: at least one ID, a bounded batch size,
// and a plausible progress value. ID syntax is checked during mapping so the
// error can name the offending entry.
// Returns a *domain.ValidationError if any checks fail.
func (r *BulkProgressRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.IDs) == 0 {
		fields["ids"] = domain.MsgRequired
	}
	if len(r.IDs) > maxBulkIDs {
		fields["ids"] = fmt.Sprintf("must not exceed %d entries, got %d", maxBulkIDs, len(r.IDs))
	}
	if r.Progress < 0 || r.Progress > 100 {
		fields["progress"] = fmt.Sprintf("must be 0-100, got %d", r.Progress)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
