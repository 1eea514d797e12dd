// Package task is the task-tracking domain: an immutable Task entity whose
// fields are validated value objects and whose transitions return a
// transaction pairing the next state with the events that describe it.
package task

import (
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/core/entity"
	"github.com/jsamuelsen11/go-domain-kernel/core/result"
	"github.com/jsamuelsen11/go-domain-kernel/core/tx"
)

// Task is an immutable snapshot of one tracked task. Transitions never
// mutate; they return a new snapshot inside a transaction.
type Task struct {
	meta     entity.Meta
	title    Title
	slug     Slug
	notes    Notes
	progress Progress
}

// Meta exposes the lifecycle state.
func (t Task) Meta() entity.Meta { return t.meta }

// WithMeta rebuilds the task around advanced lifecycle state.
func (t Task) WithMeta(m entity.Meta) Task {
	t.meta = m

	return t
}

// Title returns the task's title.
func (t Task) Title() Title { return t.title }

// Slug returns the task's URL-safe handle.
func (t Task) Slug() Slug { return t.slug }

// Notes returns the task's free-form notes.
func (t Task) Notes() Notes { return t.notes }

// Progress returns the completion percentage.
func (t Task) Progress() Progress { return t.progress }

// Is reports whether two snapshots are the same task, regardless of version.
func Is(a, b Task) bool { return entity.Is(a, b) }

// New validates the raw fields and mints a live task at version 1, recording
// a Created event. The first invalid field fails the whole construction.
func New(now time.Time, title, slug, notes string, progress int) result.Result[tx.Tx[Task]] {
	titleVO, err := NewTitle(title).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	slugVO, err := NewSlug(slug).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	notesVO, err := NewNotes(notes).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	progressVO, err := NewProgress(progress).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	meta, err := entity.New(now).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	t := Task{
		meta:     meta,
		title:    titleVO,
		slug:     slugVO,
		notes:    notesVO,
		progress: progressVO,
	}

	created := Created{
		header: newHeader(meta.ID(), now),
		Title:  titleVO.Unwrap(),
		Slug:   slugVO.Unwrap(),
	}

	return result.Ok(tx.New(t, created))
}

// Rename changes the title, recording the old and new values.
func (t Task) Rename(now time.Time, title string) result.Result[tx.Tx[Task]] {
	titleVO, err := NewTitle(title).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	renamed, err := entity.Update(t, now, entity.Set("title", func(t Task) Task {
		t.title = titleVO

		return t
	})).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	event := Renamed{
		header:   newHeader(t.meta.ID(), now),
		OldTitle: t.title.Unwrap(),
		NewTitle: titleVO.Unwrap(),
	}

	return result.Ok(tx.New(renamed, event))
}

// ChangeNotes rewrites the notes.
func (t Task) ChangeNotes(now time.Time, notes string) result.Result[tx.Tx[Task]] {
	notesVO, err := NewNotes(notes).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	changed, err := entity.Update(t, now, entity.Set("notes", func(t Task) Task {
		t.notes = notesVO

		return t
	})).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	return result.Ok(tx.New(changed, NotesChanged{header: newHeader(t.meta.ID(), now)}))
}

// SetProgress moves the completion percentage.
func (t Task) SetProgress(now time.Time, progress int) result.Result[tx.Tx[Task]] {
	progressVO, err := NewProgress(progress).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	moved, err := entity.Update(t, now, entity.Set("progress", func(t Task) Task {
		t.progress = progressVO

		return t
	})).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	event := ProgressSet{
		header:      newHeader(t.meta.ID(), now),
		OldProgress: t.progress.Unwrap(),
		NewProgress: progressVO.Unwrap(),
	}

	return result.Ok(tx.New(moved, event))
}

// Archive moves the task out of the live set. Archiving an archived task is
// a no-op carrying no event: nothing happened, so there is nothing to tell.
func (t Task) Archive(now time.Time) result.Result[tx.Tx[Task]] {
	archived, err := entity.Archive(t, now).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	// An unchanged version marks the idempotent branch.
	if archived.meta.Version() == t.meta.Version() {
		return result.Ok(tx.New(archived))
	}

	return result.Ok(tx.New(archived, Archived{header: newHeader(t.meta.ID(), now)}))
}

// Unarchive returns the task to the live set, mirroring Archive.
func (t Task) Unarchive(now time.Time) result.Result[tx.Tx[Task]] {
	restored, err := entity.Unarchive(t, now).Unwrap()
	if err != nil {
		return result.Err[tx.Tx[Task]](err)
	}

	if restored.meta.Version() == t.meta.Version() {
		return result.Ok(tx.New(restored))
	}

	return result.Ok(tx.New(restored, Unarchived{header: newHeader(t.meta.ID(), now)}))
}
