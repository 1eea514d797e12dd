package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
)

// insertTask stages the first write of a new task snapshot.
type insertTask struct {
	repo ports.TaskRepository
	t    task.Task
}

func (a insertTask) Execute(ctx context.Context) error {
	return a.repo.Insert(ctx, a.t)
}

func (a insertTask) Rollback(ctx context.Context) error {
	return a.repo.Delete(ctx, a.t.Meta().ID())
}

func (a insertTask) Description() string {
	return fmt.Sprintf("insert task %s", a.t.Meta().ID())
}

// replaceTask stages an optimistic replacement of prev by next.
type replaceTask struct {
	repo ports.TaskRepository
	prev task.Task
	next task.Task
}

func (a replaceTask) Execute(ctx context.Context) error {
	return a.repo.Update(ctx, a.next, a.prev.Meta().Version())
}

// Rollback restores the prior snapshot with a delete-then-insert, the only
// unconditional write the repository port offers.
func (a replaceTask) Rollback(ctx context.Context) error {
	if err := a.repo.Delete(ctx, a.next.Meta().ID()); err != nil {
		return err
	}

	return a.repo.Insert(ctx, a.prev)
}

func (a replaceTask) Description() string {
	return fmt.Sprintf("replace task %s v%d -> v%d",
		a.prev.Meta().ID(), a.prev.Meta().Version(), a.next.Meta().Version())
}

// publishEvents stages delivery of the recorded events. Delivered events
// cannot be unsent; Rollback is a no-op, so publication must stay the last
// staged action.
type publishEvents struct {
	sink   ports.EventSink
	events []task.Event
}

func (a publishEvents) Execute(ctx context.Context) error {
	if len(a.events) == 0 {
		return nil
	}

	return a.sink.Publish(ctx, a.events)
}

func (a publishEvents) Rollback(context.Context) error { return nil }

func (a publishEvents) Description() string {
	return fmt.Sprintf("publish %d events", len(a.events))
}
