// Package entity provides the shared lifecycle for identified domain
// objects: identity, optimistic version, creation/update instants, and soft
// archival. Consumers embed a Meta in their own immutable struct and expose
// it through the Entity interface; the state machine here guards every
// transition so consumers cannot reach an invalid lifecycle state.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-kernel/core"
	"github.com/jsamuelsen11/go-domain-kernel/core/option"
	"github.com/jsamuelsen11/go-domain-kernel/core/result"
)

// Reserved lifecycle field names. Update rejects changes that claim any of
// them; the lifecycle is only ever advanced by the state machine itself.
var reservedFields = map[string]struct{}{
	"id":          {},
	"version":     {},
	"created_at":  {},
	"updated_at":  {},
	"archived_at": {},
}

// Meta is the lifecycle state every entity carries. Fields are unexported:
// the zero Meta is not a valid state and the only way to obtain or advance
// one is through New, Update, Archive and Unarchive.
//
// Invariants held by construction: version >= 1 and increments by exactly
// one per successful mutation; createdAt <= updatedAt; archivedAt, when
// present, is >= createdAt.
type Meta struct {
	id         uuid.UUID
	version    int
	createdAt  time.Time
	updatedAt  time.Time
	archivedAt option.Option[time.Time]
}

// ID returns the entity's identity.
func (m Meta) ID() uuid.UUID { return m.id }

// Version returns the optimistic concurrency version, starting at 1.
func (m Meta) Version() int { return m.version }

// CreatedAt returns the creation instant.
func (m Meta) CreatedAt() time.Time { return m.createdAt }

// UpdatedAt returns the instant of the last successful mutation.
func (m Meta) UpdatedAt() time.Time { return m.updatedAt }

// ArchivedAt returns the archival instant, absent while the entity is live.
func (m Meta) ArchivedAt() option.Option[time.Time] { return m.archivedAt }

// IsArchived reports whether the entity is archived.
func (m Meta) IsArchived() bool { return m.archivedAt.IsSome() }

// New mints lifecycle state for a fresh entity with a generated identity.
func New(now time.Time) result.Result[Meta] {
	return NewWithID(uuid.New(), now)
}

// NewWithID mints lifecycle state under a caller-chosen identity. The
// entity starts live at version 1 with createdAt = updatedAt = now.
func NewWithID(id uuid.UUID, now time.Time) result.Result[Meta] {
	if now.IsZero() {
		return result.Err[Meta](core.ErrTimestampNaive)
	}

	return result.Ok(Meta{
		id:        id,
		version:   1,
		createdAt: now,
		updatedAt: now,
	})
}

// Entity is the contract a consumer type fulfills to ride the state
// machine: expose its Meta and rebuild itself around an advanced one. E is
// the consumer's own type, so transitions stay fully typed.
type Entity[E any] interface {
	Meta() Meta
	WithMeta(Meta) E
}

// Change is one named field mutation applied during Update. The name is the
// consumer's field name in snake_case; it exists so attempts to touch
// reserved lifecycle fields fail loudly instead of being silently ignored.
type Change[E any] struct {
	name  string
	apply func(E) E
}

// Set builds a Change that applies fn under the given field name.
func Set[E any](name string, apply func(E) E) Change[E] {
	return Change[E]{name: name, apply: apply}
}

// Update applies the changes and advances the lifecycle. Checks run in a
// fixed order:
//
//  1. archived entities reject every update
//  2. zero changes is a no-op returning the entity untouched, with no
//     further validation
//  3. changes naming reserved fields fail, listing all offenders
//  4. now must be a usable instant
//  5. now must not precede the last recorded mutation
//
// On success the changes apply in argument order and the lifecycle advances
// by one version with updatedAt = now. The lifecycle written to the result
// is derived from the entity's prior Meta, so change functions cannot smuggle
// lifecycle edits past the reserved-field check.
func Update[E Entity[E]](e E, now time.Time, changes ...Change[E]) result.Result[E] {
	meta := e.Meta()

	if meta.IsArchived() {
		return result.Err[E](core.ErrArchived)
	}

	if len(changes) == 0 {
		return result.Ok(e)
	}

	var offending []string

	for _, c := range changes {
		if _, reserved := reservedFields[c.name]; reserved {
			offending = append(offending, c.name)
		}
	}

	if len(offending) > 0 {
		return result.Err[E](core.ImmutableFieldsError(offending))
	}

	if now.IsZero() {
		return result.Err[E](core.ErrTimestampNaive)
	}

	if meta.updatedAt.After(now) {
		return result.Err[E](core.ErrTimestampOrder)
	}

	next := e
	for _, c := range changes {
		next = c.apply(next)
	}

	meta.version++
	meta.updatedAt = now

	return result.Ok(next.WithMeta(meta))
}

// Archive moves the entity into the archived state. Archiving an archived
// entity is a no-op that returns it untouched before any timestamp
// validation runs.
func Archive[E Entity[E]](e E, now time.Time) result.Result[E] {
	meta := e.Meta()

	if meta.IsArchived() {
		return result.Ok(e)
	}

	if now.IsZero() {
		return result.Err[E](core.ErrTimestampNaive)
	}

	if meta.updatedAt.After(now) {
		return result.Err[E](core.ErrTimestampOrder)
	}

	meta.archivedAt = option.Some(now)
	meta.updatedAt = now
	meta.version++

	return result.Ok(e.WithMeta(meta))
}

// Unarchive moves the entity back into the live state. Unarchiving a live
// entity is a no-op, mirroring Archive.
func Unarchive[E Entity[E]](e E, now time.Time) result.Result[E] {
	meta := e.Meta()

	if !meta.IsArchived() {
		return result.Ok(e)
	}

	if now.IsZero() {
		return result.Err[E](core.ErrTimestampNaive)
	}

	if meta.updatedAt.After(now) {
		return result.Err[E](core.ErrTimestampOrder)
	}

	meta.archivedAt = option.None[time.Time]()
	meta.updatedAt = now
	meta.version++

	return result.Ok(e.WithMeta(meta))
}

// Is reports whether two entities of the same type are the same entity.
// Identity is the id alone; version and field values do not participate.
// Entities of different concrete types can never be the same entity, which
// the type parameter already guarantees at compile time.
func Is[E Entity[E]](a, b E) bool {
	return a.Meta().id == b.Meta().id
}

// Identity is a comparable (concrete type, id) key for maps and sets.
type Identity struct {
	Type string
	ID   uuid.UUID
}

// IdentityOf derives the map/set key for an entity.
func IdentityOf[E Entity[E]](e E) Identity {
	return Identity{Type: fmt.Sprintf("%T", e), ID: e.Meta().id}
}

// EnsureInstant validates that t carries a usable point in time. Consumers
// compose it into their own checks next to the kernel's.
func EnsureInstant(t time.Time) result.Result[time.Time] {
	if t.IsZero() {
		return result.Err[time.Time](core.ErrTimestampNaive)
	}

	return result.Ok(t)
}

// EnsureOrder validates that next does not precede prev and passes next
// through.
func EnsureOrder(prev, next time.Time) result.Result[time.Time] {
	if prev.After(next) {
		return result.Err[time.Time](core.ErrTimestampOrder)
	}

	return result.Ok(next)
}
