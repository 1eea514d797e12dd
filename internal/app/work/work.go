// Package work provides an operation-scoped unit of work. A service method
// stages its outbound writes as actions, then commits them in insertion
// order; when a later action fails, the completed ones are rolled back in
// reverse order so a half-applied operation does not leak.
package work

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-domain-kernel/internal/platform/logging"
)

var (
	// ErrAlreadyCommitted is returned when staging or committing after
	// Commit has run.
	ErrAlreadyCommitted = errors.New("unit of work already committed")

	// ErrNilAction is returned when a nil action is staged.
	ErrNilAction = errors.New("action must not be nil")
)

// Action is a single executable write with rollback capability.
// Implementations should be idempotent where possible to support safe
// retries.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging (e.g., "insert task 42").
	Description() string
}

// Unit collects the writes of one service operation. The zero value is not
// usable; create one with New per operation.
type Unit struct {
	mu        sync.Mutex
	actions   []Action
	committed bool
}

// New creates an empty unit of work.
func New() *Unit {
	return &Unit{}
}

// Stage queues an action for execution during Commit.
func (u *Unit) Stage(action Action) error {
	if action == nil {
		return ErrNilAction
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return ErrAlreadyCommitted
	}

	u.actions = append(u.actions, action)
	return nil
}

// Commit executes all staged actions in insertion order. If any action
// fails, previously completed actions are rolled back in reverse order.
// Rollback errors are logged but do not affect the returned error.
//
// The committed flag and the action snapshot are captured under lock; once
// committed is set no goroutine can stage more actions, so execution happens
// without holding the lock.
//
// Returns ErrAlreadyCommitted if called more than once.
func (u *Unit) Commit(ctx context.Context) error {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return ErrAlreadyCommitted
	}
	u.committed = true
	actions := u.actions
	u.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range actions {
		logger.InfoContext(ctx, "executing action",
			slog.String("operation", "Unit.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "Unit.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, actions, i-1, logger)
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

// rollback rolls back actions 0..upTo (inclusive) in reverse order. Rollback
// errors are logged at ERROR level and do not stop the rollback of remaining
// actions.
func rollback(ctx context.Context, actions []Action, upTo int, logger *slog.Logger) {
	for i := upTo; i >= 0; i-- {
		action := actions[i]

		logger.InfoContext(ctx, "rolling back action",
			slog.String("operation", "Unit.Commit"),
			slog.Int("step", i+1),
			slog.String("action", action.Description()),
		)

		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "Unit.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
