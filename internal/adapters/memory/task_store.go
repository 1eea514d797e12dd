// Package memory provides an in-memory task repository. It backs local
// development and tests; the map is the source of truth and every write is
// guarded by the version the caller read.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TaskRepository = (*TaskStore)(nil)
	_ ports.HealthChecker  = (*TaskStore)(nil)
)

// TaskStore is a thread-safe in-memory implementation of
// [ports.TaskRepository]. Snapshots are immutable values, so the map holds
// them directly and reads never race with writers holding copies.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]task.Task
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]task.Task)}
}

// Insert stores a brand-new task. The slug must be free across the whole
// store; archived tasks keep their slugs. Safe for concurrent use.
func (s *TaskStore) Insert(ctx context.Context, t task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := t.Meta().ID()
	if _, ok := s.tasks[id]; ok {
		return fmt.Errorf("task %s already exists: %w", id, domain.ErrConflict)
	}

	slug := t.Slug().Unwrap()
	for _, existing := range s.tasks {
		if existing.Slug().Unwrap() == slug {
			return fmt.Errorf("slug %q already in use: %w", slug, domain.ErrConflict)
		}
	}

	s.tasks[id] = t

	return nil
}

// Update replaces a stored snapshot, guarded by the version the caller read.
func (s *TaskStore) Update(ctx context.Context, t task.Task, expected int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := t.Meta().ID()
	stored, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	if stored.Meta().Version() != expected {
		return fmt.Errorf("task %s is at version %d, expected %d: %w",
			id, stored.Meta().Version(), expected, domain.ErrConflict)
	}

	s.tasks[id] = t

	return nil
}

// Get returns a single task by ID.
func (s *TaskStore) Get(ctx context.Context, id uuid.UUID) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return task.Task{}, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	return t, nil
}

// List returns tasks matching the filter in unspecified order.
func (s *TaskStore) List(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			matched = append(matched, t)
		}
	}

	return matched, nil
}

// Delete removes a task entirely. Used to revert failed multi-step writes.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	delete(s.tasks, id)

	return nil
}

// Name implements [ports.HealthChecker].
func (s *TaskStore) Name() string {
	return "task-store"
}

// HealthCheck implements [ports.HealthChecker]. The store has no downstream
// to probe; it reports healthy unless the context is already done.
func (s *TaskStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
