package task

import (
	"time"

	"github.com/google/uuid"
)

// Event type identifiers, stable across the wire.
const (
	EventTypeCreated      = "task.created"
	EventTypeRenamed      = "task.renamed"
	EventTypeNotesChanged = "task.notes_changed"
	EventTypeProgressSet  = "task.progress_set"
	EventTypeArchived     = "task.archived"
	EventTypeUnarchived   = "task.unarchived"
)

// Event is a fact about one task, minted by a transition and carried through
// the transaction's event log in the order it happened.
type Event interface {
	EventType() string
	EventID() uuid.UUID
	TaskID() uuid.UUID
	OccurredAt() time.Time
}

// header is the part every event shares. It is unexported so events can only
// be minted by transitions in this package.
type header struct {
	id   uuid.UUID
	task uuid.UUID
	at   time.Time
}

func newHeader(task uuid.UUID, at time.Time) header {
	return header{id: uuid.New(), task: task, at: at}
}

func (h header) EventID() uuid.UUID    { return h.id }
func (h header) TaskID() uuid.UUID     { return h.task }
func (h header) OccurredAt() time.Time { return h.at }

// Created records a task coming into existence.
type Created struct {
	header
	Title string
	Slug  string
}

func (Created) EventType() string { return EventTypeCreated }

// Renamed records a title change.
type Renamed struct {
	header
	OldTitle string
	NewTitle string
}

func (Renamed) EventType() string { return EventTypeRenamed }

// NotesChanged records that the notes were rewritten. The text itself stays
// out of the event.
type NotesChanged struct {
	header
}

func (NotesChanged) EventType() string { return EventTypeNotesChanged }

// ProgressSet records a completion change.
type ProgressSet struct {
	header
	OldProgress int
	NewProgress int
}

func (ProgressSet) EventType() string { return EventTypeProgressSet }

// Archived records the task leaving the live set.
type Archived struct {
	header
}

func (Archived) EventType() string { return EventTypeArchived }

// Unarchived records the task returning to the live set.
type Unarchived struct {
	header
}

func (Unarchived) EventType() string { return EventTypeUnarchived }
