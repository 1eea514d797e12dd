// Package app provides application services that orchestrate use cases by
// coordinating domain transitions with storage and event delivery through
// port interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/core/tx"
	"github.com/jsamuelsen11/go-domain-kernel/internal/app/fanout"
	"github.com/jsamuelsen11/go-domain-kernel/internal/app/work"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// bulkMaxWorkers bounds the concurrency of bulk operations.
const bulkMaxWorkers = 5

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService. Every mutation follows the same
// shape: load the current snapshot, run the domain transition, then commit
// the storage write and the event publication as one unit of work. The
// service owns the clock; domain transitions only ever receive instants.
type TaskService struct {
	repo   ports.TaskRepository
	sink   ports.EventSink
	logger *slog.Logger
	now    func() time.Time
}

// NewTaskService creates a TaskService backed by the given storage and
// delivery ports. A nil logger falls back to a no-op logger.
func NewTaskService(repo ports.TaskRepository, sink ports.EventSink, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &TaskService{
		repo:   repo,
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// CreateTask validates the input, mints a new task and publishes its
// creation event.
func (s *TaskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (task.Task, error) {
	s.logger.InfoContext(ctx, "creating task", slog.String("slug", input.Slug))

	txn, err := task.New(s.now(), input.Title, input.Slug, input.Notes, input.Progress).Unwrap()
	if err != nil {
		return task.Task{}, classify(err)
	}

	created := txn.State()

	err = s.commitWrites(ctx,
		insertTask{repo: s.repo, t: created},
		publishEvents{sink: s.sink, events: domainEvents(txn)},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("task_id", created.Meta().ID().String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return created, nil
}

// GetTask returns a single task by ID.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	s.logger.InfoContext(ctx, "fetching task", slog.String("task_id", id.String()))

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return t, nil
}

// ListTasks returns tasks matching the filter.
func (s *TaskService) ListTasks(ctx context.Context, filter task.Filter) ([]task.Task, error) {
	s.logger.InfoContext(ctx, "listing tasks",
		slog.Bool("include_archived", filter.IncludeArchived),
	)

	tasks, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return tasks, nil
}

// UpdateTask applies the requested field changes in input order, each as its
// own versioned transition, and publishes the recorded events together.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, input ports.UpdateTaskInput) (task.Task, error) {
	s.logger.InfoContext(ctx, "updating task", slog.String("task_id", id.String()))

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	now := s.now()
	acc := tx.New(current)

	if input.Title != nil {
		step, err := acc.State().Rename(now, *input.Title).Unwrap()
		if err != nil {
			return task.Task{}, classify(err)
		}
		acc = acc.Combine(step)
	}

	if input.Notes != nil {
		step, err := acc.State().ChangeNotes(now, *input.Notes).Unwrap()
		if err != nil {
			return task.Task{}, classify(err)
		}
		acc = acc.Combine(step)
	}

	if input.Progress != nil {
		step, err := acc.State().SetProgress(now, *input.Progress).Unwrap()
		if err != nil {
			return task.Task{}, classify(err)
		}
		acc = acc.Combine(step)
	}

	events := domainEvents(acc)
	if len(events) == 0 {
		// Nothing requested; nothing to store or publish.
		return current, nil
	}

	err = s.commitWrites(ctx,
		replaceTask{repo: s.repo, prev: current, next: acc.State()},
		publishEvents{sink: s.sink, events: events},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return acc.State(), nil
}

// ArchiveTask moves the task out of the live set. Archiving an archived
// task succeeds without writing or publishing anything.
func (s *TaskService) ArchiveTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	s.logger.InfoContext(ctx, "archiving task", slog.String("task_id", id.String()))

	return s.lifecycle(ctx, "ArchiveTask", id, func(t task.Task, now time.Time) (tx.Tx[task.Task], error) {
		return t.Archive(now).Unwrap()
	})
}

// UnarchiveTask returns the task to the live set, mirroring ArchiveTask.
func (s *TaskService) UnarchiveTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	s.logger.InfoContext(ctx, "unarchiving task", slog.String("task_id", id.String()))

	return s.lifecycle(ctx, "UnarchiveTask", id, func(t task.Task, now time.Time) (tx.Tx[task.Task], error) {
		return t.Unarchive(now).Unwrap()
	})
}

// lifecycle runs an archival transition and commits its effects. The
// idempotent branch is detected by an empty event log: nothing happened, so
// nothing is written or published.
func (s *TaskService) lifecycle(ctx context.Context, op string, id uuid.UUID, transition func(task.Task, time.Time) (tx.Tx[task.Task], error)) (task.Task, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", op),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	txn, err := transition(current, s.now())
	if err != nil {
		return task.Task{}, classify(err)
	}

	events := domainEvents(txn)
	if len(events) == 0 {
		return txn.State(), nil
	}

	err = s.commitWrites(ctx,
		replaceTask{repo: s.repo, prev: current, next: txn.State()},
		publishEvents{sink: s.sink, events: events},
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to commit lifecycle change",
			slog.String("operation", op),
			slog.String("task_id", id.String()),
			slog.Any("error", err),
		)
		return task.Task{}, err
	}

	return txn.State(), nil
}

// BulkSetProgress moves the completion of many tasks concurrently with
// partial success semantics.
func (s *TaskService) BulkSetProgress(ctx context.Context, input ports.BulkProgressInput) (*ports.BulkProgressResult, error) {
	s.logger.InfoContext(ctx, "bulk setting progress",
		slog.Int("count", len(input.IDs)),
		slog.Int("progress", input.Progress),
	)

	if len(input.IDs) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"ids": domain.MsgMustNotEmpty}}
	}

	// Reject an impossible target before touching any task.
	if r := task.NewProgress(input.Progress); r.IsErr() {
		return nil, classify(r.Err())
	}

	outcomes := fanout.Run(ctx, bulkMaxWorkers, input.IDs, func(ctx context.Context, id uuid.UUID) (task.Task, error) {
		return s.setProgress(ctx, id, input.Progress)
	})

	result := &ports.BulkProgressResult{}
	for i, oc := range outcomes {
		if oc.Err != nil {
			result.Errors = append(result.Errors, ports.BulkProgressError{TaskID: input.IDs[i], Err: oc.Err})
			continue
		}
		result.Updated = append(result.Updated, oc.Value)
	}

	return result, nil
}

// setProgress runs the single-task progress transition as its own unit of
// work so bulk items succeed and fail independently.
func (s *TaskService) setProgress(ctx context.Context, id uuid.UUID, progress int) (task.Task, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return task.Task{}, err
	}

	txn, err := current.SetProgress(s.now(), progress).Unwrap()
	if err != nil {
		return task.Task{}, classify(err)
	}

	err = s.commitWrites(ctx,
		replaceTask{repo: s.repo, prev: current, next: txn.State()},
		publishEvents{sink: s.sink, events: domainEvents(txn)},
	)
	if err != nil {
		return task.Task{}, err
	}

	return txn.State(), nil
}

// commitWrites stages the actions into a fresh unit of work and commits it.
func (s *TaskService) commitWrites(ctx context.Context, actions ...work.Action) error {
	unit := work.New()
	for _, action := range actions {
		if err := unit.Stage(action); err != nil {
			return err
		}
	}

	return unit.Commit(ctx)
}

// domainEvents narrows a transaction's open event log to task events.
func domainEvents(txn tx.Tx[task.Task]) []task.Event {
	raw := txn.Events()
	events := make([]task.Event, 0, len(raw))

	for _, e := range raw {
		if ev, ok := e.(task.Event); ok {
			events = append(events, ev)
		}
	}

	return events
}
