package ports

import (
	"context"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
)

// EventSink defines the delivery port for domain events.
// Implemented by outbound adapters (webhook); called by the application layer.
type EventSink interface {
	// Publish delivers events in the order given. A nil return means the
	// whole batch was accepted; any error means the caller must treat the
	// batch as unpublished.
	// Returns domain.ErrUnavailable when the downstream cannot be reached.
	Publish(ctx context.Context, events []task.Event) error
}
