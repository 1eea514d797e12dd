package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-kernel/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain"
	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
	"github.com/jsamuelsen11/go-domain-kernel/internal/ports"
	"github.com/jsamuelsen11/go-domain-kernel/mocks"
)

var missingTaskID = uuid.MustParse("5f3a9c2e-8d41-4b7a-9e6f-2c1d8a0b4e7d")

func newTaskHandler(t *testing.T) (*handlers.TaskHandler, *mocks.MockTaskService) {
	t.Helper()
	svc := mocks.NewMockTaskService(t)
	return handlers.NewTaskHandler(svc), svc
}

// --- ListTasks ---

func TestListTasks_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	tasks := []task.Task{validTask(t)}
	svc.EXPECT().ListTasks(mock.Anything, task.Filter{}).Return(tasks, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListTasks_WithFilters(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	tasks := []task.Task{validTask(t)}
	svc.EXPECT().ListTasks(mock.Anything, task.Filter{
		IncludeArchived: true,
		Slug:            "draft-launch-checklist",
	}).Return(tasks, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?include_archived=true&slug=draft-launch-checklist", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListTasks_InvalidIncludeArchivedFilter(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?include_archived=banana", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListTasks_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ListTasks(mock.Anything, task.Filter{}).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- CreateTask ---

func TestCreateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	created := validTask(t)
	svc.EXPECT().CreateTask(mock.Anything, ports.CreateTaskInput{
		Title: "Draft launch checklist",
		Slug:  "draft-launch-checklist",
		Notes: "cover rollback steps",
	}).Return(created, nil)

	body := jsonBody(t, dto.CreateTaskRequest{
		Title: "Draft launch checklist",
		Slug:  "draft-launch-checklist",
		Notes: "cover rollback steps",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.Title != "Draft launch checklist" {
		t.Errorf("Title = %q, want %q", resp.Title, "Draft launch checklist")
	}
	if resp.Version != 1 {
		t.Errorf("Version = %d, want 1", resp.Version)
	}
}

func TestCreateTask_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_ValidationError(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "", Slug: ""})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateTask_ConflictingSlug(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().CreateTask(mock.Anything, mock.AnythingOfType("ports.CreateTaskInput")).
		Return(task.Task{}, domain.ErrConflict)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "Draft launch checklist", Slug: "draft-launch-checklist"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body)
	req.Header.Set("Content-Type", "application/json")
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- GetTask ---

func TestGetTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	fixture := validTask(t)
	id := fixture.Meta().ID()
	svc.EXPECT().GetTask(mock.Anything, id).Return(fixture, nil)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+id.String(), nil), id.String())
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != id.String() {
		t.Errorf("ID = %q, want %q", resp.ID, id.String())
	}
}

func TestGetTask_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc", nil), "abc")
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().GetTask(mock.Anything, missingTaskID).Return(task.Task{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodGet, "/api/v1/tasks/"+missingTaskID.String(), nil), missingTaskID.String())
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateTask ---

func TestUpdateTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	base := validTask(t)
	txn, err := base.Rename(testTime.Add(time.Minute), testUpdatedTitle).Unwrap()
	if err != nil {
		t.Fatalf("failed to rename task fixture: %v", err)
	}
	updated := txn.State()

	title := testUpdatedTitle
	svc.EXPECT().UpdateTask(mock.Anything, base.Meta().ID(), ports.UpdateTaskInput{Title: &title}).
		Return(updated, nil)

	body := jsonBody(t, dto.UpdateTaskRequest{Title: &title})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+base.Meta().ID().String(), body)
	req.Header.Set("Content-Type", "application/json")
	req = withIDParam(req, base.Meta().ID().String())
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.Title != testUpdatedTitle {
		t.Errorf("Title = %q, want %q", resp.Title, testUpdatedTitle)
	}
	if resp.Version != 2 {
		t.Errorf("Version = %d, want 2", resp.Version)
	}
}

func TestUpdateTask_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/abc", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	req = withIDParam(req, "abc")
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTask_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	id := missingTaskID.String()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+id, bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	req = withIDParam(req, id)
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTask_ArchivedConflict(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	title := testUpdatedTitle
	svc.EXPECT().UpdateTask(mock.Anything, missingTaskID, ports.UpdateTaskInput{Title: &title}).
		Return(task.Task{}, domain.ErrConflict)

	body := jsonBody(t, dto.UpdateTaskRequest{Title: &title})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/"+missingTaskID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	req = withIDParam(req, missingTaskID.String())
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- ArchiveTask ---

func TestArchiveTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	archived := archivedTask(t)
	id := archived.Meta().ID()
	svc.EXPECT().ArchiveTask(mock.Anything, id).Return(archived, nil)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+id.String()+"/archive", nil), id.String())
	h.ArchiveTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ArchivedAt == nil {
		t.Error("ArchivedAt = nil, want timestamp")
	}
}

func TestArchiveTask_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/abc/archive", nil), "abc")
	h.ArchiveTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestArchiveTask_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().ArchiveTask(mock.Anything, missingTaskID).Return(task.Task{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+missingTaskID.String()+"/archive", nil), missingTaskID.String())
	h.ArchiveTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UnarchiveTask ---

func TestUnarchiveTask_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	restored := validTask(t)
	id := restored.Meta().ID()
	svc.EXPECT().UnarchiveTask(mock.Anything, id).Return(restored, nil)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/"+id.String()+"/unarchive", nil), id.String())
	h.UnarchiveTask(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ArchivedAt != nil {
		t.Errorf("ArchivedAt = %v, want nil", *resp.ArchivedAt)
	}
}

func TestUnarchiveTask_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := withIDParam(httptest.NewRequest(http.MethodPost, "/api/v1/tasks/abc/unarchive", nil), "abc")
	h.UnarchiveTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- BulkSetProgress ---

func TestBulkSetProgress_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	updated := validTask(t)
	result := &ports.BulkProgressResult{
		Updated: []task.Task{updated},
		Errors: []ports.BulkProgressError{
			{TaskID: missingTaskID, Err: domain.ErrNotFound},
		},
	}
	svc.EXPECT().BulkSetProgress(mock.Anything, ports.BulkProgressInput{
		IDs:      []uuid.UUID{updated.Meta().ID(), missingTaskID},
		Progress: 60,
	}).Return(result, nil)

	body := jsonBody(t, dto.BulkProgressRequest{
		IDs:      []string{updated.Meta().ID().String(), missingTaskID.String()},
		Progress: 60,
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/bulk/progress", body)
	req.Header.Set("Content-Type", "application/json")
	h.BulkSetProgress(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BulkProgressResponse](t, rec)
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
	if resp.Succeeded != 1 {
		t.Errorf("Succeeded = %d, want 1", resp.Succeeded)
	}
	if resp.Failed != 1 {
		t.Errorf("Failed = %d, want 1", resp.Failed)
	}
}

func TestBulkSetProgress_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/bulk/progress", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.BulkSetProgress(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBulkSetProgress_EmptyIDs(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, dto.BulkProgressRequest{IDs: []string{}, Progress: 60})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/bulk/progress", body)
	req.Header.Set("Content-Type", "application/json")
	h.BulkSetProgress(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBulkSetProgress_MalformedID(t *testing.T) {
	t.Parallel()
	h, _ := newTaskHandler(t)

	body := jsonBody(t, dto.BulkProgressRequest{IDs: []string{"not-a-uuid"}, Progress: 60})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/bulk/progress", body)
	req.Header.Set("Content-Type", "application/json")
	h.BulkSetProgress(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBulkSetProgress_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newTaskHandler(t)

	svc.EXPECT().BulkSetProgress(mock.Anything, mock.AnythingOfType("ports.BulkProgressInput")).
		Return(nil, domain.ErrUnavailable)

	body := jsonBody(t, dto.BulkProgressRequest{IDs: []string{missingTaskID.String()}, Progress: 60})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/bulk/progress", body)
	req.Header.Set("Content-Type", "application/json")
	h.BulkSetProgress(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}
