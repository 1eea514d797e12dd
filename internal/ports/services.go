package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
)

// TaskService defines the service port for task operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Mutations run the domain state machine, persist the resulting snapshot and
// publish the recorded events as one unit: a task returned from any method
// has already been stored and its events accepted by the sink.
type TaskService interface {
	// CreateTask validates the input, mints a new task and publishes its
	// creation event.
	// Returns domain.ErrValidation if any field fails validation and
	// domain.ErrConflict if the slug is already in use.
	CreateTask(ctx context.Context, input CreateTaskInput) (task.Task, error)

	// GetTask returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id uuid.UUID) (task.Task, error)

	// ListTasks returns tasks matching the filter in unspecified order.
	// Pass a zero-value Filter to list all live tasks.
	ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// UpdateTask applies the requested field changes in input order (title,
	// notes, progress), each as its own versioned transition.
	// Returns domain.ErrNotFound if the task does not exist,
	// domain.ErrValidation if a field fails validation and
	// domain.ErrConflict if the task changed concurrently or is archived.
	UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (task.Task, error)

	// ArchiveTask moves the task out of the live set. Archiving an archived
	// task succeeds without publishing anything.
	// Returns domain.ErrNotFound if the task does not exist.
	ArchiveTask(ctx context.Context, id uuid.UUID) (task.Task, error)

	// UnarchiveTask returns the task to the live set, mirroring ArchiveTask.
	UnarchiveTask(ctx context.Context, id uuid.UUID) (task.Task, error)

	// BulkSetProgress moves the completion of many tasks concurrently with
	// partial success semantics: each task succeeds or fails independently
	// and per-task failures are collected in BulkProgressResult.Errors. A
	// hard error is returned only for request-level failures (invalid
	// progress value, empty id list).
	BulkSetProgress(ctx context.Context, input BulkProgressInput) (*BulkProgressResult, error)
}

// CreateTaskInput carries the raw fields for a new task. Validation happens
// in the domain; transports only shape-check.
type CreateTaskInput struct {
	Title    string
	Slug     string
	Notes    string
	Progress int
}

// UpdateTaskInput carries a partial update. Nil fields are left untouched.
type UpdateTaskInput struct {
	Title    *string
	Notes    *string
	Progress *int
}

// BulkProgressInput names the tasks to move and the target completion.
type BulkProgressInput struct {
	IDs      []uuid.UUID
	Progress int
}

// BulkProgressError records a single failed task within a bulk operation.
type BulkProgressError struct {
	TaskID uuid.UUID
	Err    error
}

// BulkProgressResult holds the outcomes of a bulk progress operation.
// Updated contains the moved tasks; Errors contains per-task failures.
type BulkProgressResult struct {
	Updated []task.Task
	Errors  []BulkProgressError
}
