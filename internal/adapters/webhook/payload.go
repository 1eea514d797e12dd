package webhook

import (
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
)

// envelope is the wire format for one delivery: the ordered events recorded
// by a single committed transition.
type envelope struct {
	Events []eventDTO `json:"events"`
}

// eventDTO is the receiver-facing shape of one domain event. Type-specific
// payload fields travel in Data so receivers can switch on Type alone.
type eventDTO struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	TaskID     string         `json:"task_id"`
	OccurredAt string         `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// toEnvelope translates domain events to the delivery format, preserving
// their order.
func toEnvelope(events []task.Event) envelope {
	dtos := make([]eventDTO, len(events))
	for i, ev := range events {
		dtos[i] = toEventDTO(ev)
	}

	return envelope{Events: dtos}
}

func toEventDTO(ev task.Event) eventDTO {
	return eventDTO{
		ID:         ev.EventID().String(),
		Type:       ev.EventType(),
		TaskID:     ev.TaskID().String(),
		OccurredAt: ev.OccurredAt().UTC().Format(time.RFC3339),
		Data:       eventData(ev),
	}
}

// eventData extracts the per-type payload. Events that carry no fields
// beyond the header produce no data object.
func eventData(ev task.Event) map[string]any {
	switch e := ev.(type) {
	case task.Created:
		return map[string]any{"title": e.Title, "slug": e.Slug}
	case task.Renamed:
		return map[string]any{"old_title": e.OldTitle, "new_title": e.NewTitle}
	case task.ProgressSet:
		return map[string]any{"old_progress": e.OldProgress, "new_progress": e.NewProgress}
	default:
		return nil
	}
}
