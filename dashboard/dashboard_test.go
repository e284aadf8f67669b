package dashboard_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/quayside-io/hq/dashboard"
	"github.com/quayside-io/hq/delivery"
	"github.com/quayside-io/hq/message"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	records []*delivery.Record
}

func (s *stubStore) SampleRecent(ctx context.Context, limit int) ([]*delivery.Record, error) {
	if limit < len(s.records) {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func TestDashboardRendersSample(t *testing.T) {
	store := &stubStore{records: []*delivery.Record{
		{
			Message: message.Message{ID: uuid.New(), Args: json.RawMessage(`{"n":1}`)},
			Queue:   "orders",
		},
	}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := dashboard.NewHandler(store, log)

	req := httptest.NewRequest("GET", "/web", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "orders")
	require.Contains(t, rec.Body.String(), "ready")
}
