package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-domain-kernel/internal/domain/task"
)

const testUpdatedTitle = "Updated title"

var testTime = time.Date(2026, 3, 3, 9, 30, 0, 0, time.UTC)

// withIDParam plants the {id} URL parameter the way chi's router would, so
// handlers can be exercised without mounting a router.
func withIDParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTask(t *testing.T) task.Task {
	t.Helper()
	txn, err := task.New(testTime, "Draft launch checklist", "draft-launch-checklist", "cover rollback steps", 0).Unwrap()
	require.NoError(t, err, "building task fixture")
	return txn.State()
}

func archivedTask(t *testing.T) task.Task {
	t.Helper()
	txn, err := validTask(t).Archive(testTime.Add(time.Minute)).Unwrap()
	require.NoError(t, err, "archiving task fixture")
	return txn.State()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v), "encoding request body")
	return &buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "decoding response body")
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status; body = %s", rec.Body.String())
}
