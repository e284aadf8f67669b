// Package dashboard is the optional read-only HTML view of recently
// touched messages: a flat table, no client state, rendered fresh on
// every request.
package dashboard

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/quayside-io/hq/delivery"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>hq</title>
  <style>
    body { font-family: sans-serif; }
    pre { white-space: pre-wrap; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
  </style>
</head>
<body>
  <h1>hq</h1>
  <table>
    <thead>
      <tr>
        <th>queue</th>
        <th>id</th>
        <th>args</th>
        <th>attempts</th>
        <th>state</th>
        <th>inserted_at</th>
        <th>updated_at</th>
        <th>locked_at</th>
        <th>completed_at</th>
        <th>failed_at</th>
      </tr>
    </thead>
    <tbody>
      {{range .}}
      <tr>
        <td>{{.Queue}}</td>
        <td>{{.ID}}</td>
        <td><pre>{{.Args}}</pre></td>
        <td>{{.Attempts}}</td>
        <td>{{.State}}</td>
        <td>{{.InsertedAt}}</td>
        <td>{{.UpdatedAt}}</td>
        <td>{{.LockedAt}}</td>
        <td>{{.CompletedAt}}</td>
        <td>{{.FailedAt}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>
</body>
</html>
`

var page = template.Must(template.New("dashboard").Parse(pageTemplate))

// row is the flat, denormalized shape the template renders, chosen to
// avoid a cyclic queue/message object graph.
type row struct {
	Queue       string
	ID          string
	Args        string
	Attempts    uint32
	State       string
	InsertedAt  string
	UpdatedAt   string
	LockedAt    string
	CompletedAt string
	FailedAt    string
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func newRow(r *delivery.Record) row {
	return row{
		Queue:       r.Queue,
		ID:          r.ID.String(),
		Args:        string(r.Args),
		Attempts:    r.Attempts,
		State:       r.State().String(),
		InsertedAt:  r.InsertedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
		LockedAt:    formatTime(r.LockedAt),
		CompletedAt: formatTime(r.CompletedAt),
		FailedAt:    formatTime(r.FailedAt),
	}
}

// Store is the read dependency the dashboard handler needs.
type Store interface {
	SampleRecent(ctx context.Context, limit int) ([]*delivery.Record, error)
}

// sampleLimit matches the ten-row sample the original dashboard query
// used.
const sampleLimit = 10

// Handler renders the dashboard.
type Handler struct {
	store Store
	log   *slog.Logger
}

// NewHandler builds a dashboard Handler backed by store.
func NewHandler(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.SampleRecent(r.Context(), sampleLimit)
	if err != nil {
		h.log.Error("dashboard sample failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	rows := make([]row, len(records))
	for i, rec := range records {
		rows[i] = newRow(rec)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, rows); err != nil {
		h.log.Error("dashboard render failed", "err", err)
	}
}
