package webhook

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
)

func TestToEnvelope_PerTypePayloads(t *testing.T) {
	t.Parallel()

	createTxn, err := task.New(sinkNow, "Ship the release", "ship-the-release", "cut from main", 20).Unwrap()
	if err != nil {
		t.Fatalf("task.New() error = %v, want nil", err)
	}

	progressTxn, err := createTxn.State().SetProgress(sinkNow.Add(time.Minute), 60).Unwrap()
	if err != nil {
		t.Fatalf("SetProgress() error = %v, want nil", err)
	}

	notesTxn, err := progressTxn.State().ChangeNotes(sinkNow.Add(2*time.Minute), "rebased").Unwrap()
	if err != nil {
		t.Fatalf("ChangeNotes() error = %v, want nil", err)
	}

	got := toEnvelope(batchEvents(t, createTxn, progressTxn, notesTxn))
	if len(got.Events) != 3 {
		t.Fatalf("envelope has %d events, want 3", len(got.Events))
	}

	created := got.Events[0]
	if created.Type != task.EventTypeCreated {
		t.Errorf("Events[0].Type = %q, want %q", created.Type, task.EventTypeCreated)
	}
	if created.Data["title"] != "Ship the release" || created.Data["slug"] != "ship-the-release" {
		t.Errorf("created data = %v, want title and slug", created.Data)
	}

	progress := got.Events[1]
	if progress.Data["old_progress"] != 20 || progress.Data["new_progress"] != 60 {
		t.Errorf("progress data = %v, want old 20 new 60", progress.Data)
	}

	notes := got.Events[2]
	if notes.Type != task.EventTypeNotesChanged {
		t.Errorf("Events[2].Type = %q, want %q", notes.Type, task.EventTypeNotesChanged)
	}
	if notes.Data != nil {
		t.Errorf("notes data = %v, want none", notes.Data)
	}
}
