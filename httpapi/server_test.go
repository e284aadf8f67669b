package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quayside-io/hq"
	"github.com/quayside-io/hq/httpapi"
	"github.com/quayside-io/hq/sqlstore"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	db, err := sqlstore.Open(context.Background(), "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := sqlstore.New(db)
	engine := hq.NewEngine(store)
	admin := hq.NewAdmin(store)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return httpapi.NewHandler(engine, admin, nil, log, httpapi.Config{})
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestCreateEnqueueReceiveCompleteHappyPath drives the full lifecycle
// end to end over the HTTP surface.
func TestCreateEnqueueReceiveCompleteHappyPath(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/queues/q/enqueue", `{"foo":"bar"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var enqueued struct {
		MessageID string `json:"message_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &enqueued))
	require.NotEmpty(t, enqueued.MessageID)

	rec = doJSON(t, handler, http.MethodGet, "/queues/q/receive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var received struct {
		ID       string          `json:"id"`
		Args     json.RawMessage `json:"args"`
		Queue    string          `json:"queue"`
		Attempts int             `json:"attempts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &received))
	require.Equal(t, enqueued.MessageID, received.ID)
	require.Equal(t, "q", received.Queue)
	require.Equal(t, 1, received.Attempts)
	require.JSONEq(t, `{"foo":"bar"}`, string(received.Args))

	rec = doJSON(t, handler, http.MethodPut, "/messages/"+received.ID+"/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/queues/q/receive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", trimNewline(rec.Body.String()))
}

// TestExplicitFailRetiresMessage verifies an explicit fail is
// terminal: the message is no longer eligible for receive.
func TestExplicitFailRetiresMessage(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")
	rec := doJSON(t, handler, http.MethodPost, "/queues/q/enqueue", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/queues/q/receive", "")
	var received struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &received))

	rec = doJSON(t, handler, http.MethodPut, "/messages/"+received.ID+"/fail", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/queues/q/receive", "")
	require.Equal(t, "null", trimNewline(rec.Body.String()))
}

// TestDuplicateCreateConflicts verifies a duplicate queue name is
// rejected with 409 Conflict.
func TestDuplicateCreateConflicts(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

// TestDeleteQueueCascadesMessages verifies deleting a queue removes
// its messages too, and the name can be reused afterward.
func TestDeleteQueueCascadesMessages(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")
	for i := 0; i < 3; i++ {
		rec := doJSON(t, handler, http.MethodPost, "/queues/q/enqueue", `{}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, handler, http.MethodDelete, "/queues/q", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/queues", "")
	require.JSONEq(t, `[]`, rec.Body.String())

	doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")
	rec = doJSON(t, handler, http.MethodGet, "/queues/q/receive", "")
	require.Equal(t, "null", trimNewline(rec.Body.String()))
}

func TestEnqueueMalformedJSONIsBadRequest(t *testing.T) {
	handler := newTestHandler(t)
	doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")

	rec := doJSON(t, handler, http.MethodPost, "/queues/q/enqueue", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQueueValidation(t *testing.T) {
	handler := newTestHandler(t)

	rec := doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=0&visibility_timeout_seconds=30", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateQueuePartialPatch(t *testing.T) {
	handler := newTestHandler(t)
	doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")

	rec := doJSON(t, handler, http.MethodPut, "/queues/q?max_attempts=9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/queues/q", "")
	var q struct {
		MaxAttempts              int `json:"max_attempts"`
		VisibilityTimeoutSeconds int `json:"visibility_timeout_seconds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	require.Equal(t, 9, q.MaxAttempts)
	require.Equal(t, 30, q.VisibilityTimeoutSeconds)
}

func TestUpdateQueueNonIntegerIsUnprocessable(t *testing.T) {
	handler := newTestHandler(t)
	doJSON(t, handler, http.MethodPost, "/queues?name=q&max_attempts=5&visibility_timeout_seconds=30", "")

	rec := doJSON(t, handler, http.MethodPut, "/queues/q?max_attempts=not-a-number", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/queues/q", "")
	var q struct {
		MaxAttempts int `json:"max_attempts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))
	require.Equal(t, 5, q.MaxAttempts)
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
