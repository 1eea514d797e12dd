package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
)

// TaskRepository defines the storage port for task snapshots.
// Implemented by outbound adapters; called by the application layer.
// Snapshots are immutable values, so writes replace whole tasks and the
// version participates in every update.
type TaskRepository interface {
	// Insert stores a brand-new task.
	// Returns domain.ErrConflict if the ID or the slug is already taken;
	// archived tasks keep their slugs.
	Insert(ctx context.Context, t task.Task) error

	// Update replaces a stored snapshot with its successor. The stored
	// version must equal expected, the version the caller read before
	// transitioning.
	// Returns domain.ErrNotFound if the task does not exist and
	// domain.ErrConflict if another writer advanced it first.
	Update(ctx context.Context, t task.Task, expected int) error

	// Get returns a single task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id uuid.UUID) (task.Task, error)

	// List returns tasks matching the filter in unspecified order.
	List(ctx context.Context, filter task.Filter) ([]task.Task, error)

	// Delete removes a task entirely. It exists to revert a failed
	// multi-step write, not as a domain operation; tasks leave the live set
	// by archiving.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
