package httpapi

import (
	"net/http"
	"strconv"

	"github.com/quayside-io/hq/queue"
)

type queueView struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	MaxAttempts              int    `json:"max_attempts"`
	VisibilityTimeoutSeconds int    `json:"visibility_timeout_seconds"`
	InsertedAt               string `json:"inserted_at"`
	UpdatedAt                string `json:"updated_at"`
}

func newQueueView(q *queue.Queue) *queueView {
	if q == nil {
		return nil
	}
	return &queueView{
		ID:                       q.ID.String(),
		Name:                     q.Name,
		MaxAttempts:              q.MaxAttempts,
		VisibilityTimeoutSeconds: q.VisibilityTimeoutSeconds,
		InsertedAt:               q.InsertedAt.Format(timeLayout),
		UpdatedAt:                q.UpdatedAt.Format(timeLayout),
	}
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// queryInt parses a required integer query parameter. ok is false if
// the parameter is missing or not a valid integer.
func queryInt(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// queryOptionalInt parses an optional integer query parameter.
// present is false only if the parameter was not supplied at all; if
// it was supplied but is not a valid integer, err is non-nil.
func queryOptionalInt(r *http.Request, key string) (n int, present bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	return n, true, err
}

func (h *Handler) createQueue(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	maxAttempts, ok1 := queryInt(r, "max_attempts")
	visibilityTimeoutSeconds, ok2 := queryInt(r, "visibility_timeout_seconds")
	if name == "" || !ok1 || !ok2 {
		http.Error(w, "name, max_attempts, and visibility_timeout_seconds are required", http.StatusUnprocessableEntity)
		return
	}

	_, err := h.admin.CreateQueue(r.Context(), name, maxAttempts, visibilityTimeoutSeconds)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeEmpty(w, http.StatusOK)
}

func (h *Handler) listQueues(w http.ResponseWriter, r *http.Request) {
	queues, err := h.admin.ListQueues(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	views := make([]*queueView, len(queues))
	for i, q := range queues {
		views[i] = newQueueView(q)
	}
	writeJSON(w, h.log, http.StatusOK, views)
}

func (h *Handler) getQueue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	q, err := h.admin.GetQueue(r.Context(), name)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, newQueueView(q))
}

func (h *Handler) updateQueue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var patch queue.Patch
	if v, present, err := queryOptionalInt(r, "max_attempts"); err != nil {
		http.Error(w, "max_attempts must be an integer", http.StatusUnprocessableEntity)
		return
	} else if present {
		patch.MaxAttempts = &v
	}
	if v, present, err := queryOptionalInt(r, "visibility_timeout_seconds"); err != nil {
		http.Error(w, "visibility_timeout_seconds must be an integer", http.StatusUnprocessableEntity)
		return
	} else if present {
		patch.VisibilityTimeoutSeconds = &v
	}

	if _, err := h.admin.UpdateQueue(r.Context(), name, patch); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeEmpty(w, http.StatusOK)
}

func (h *Handler) deleteQueue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := h.admin.DeleteQueue(r.Context(), name); err != nil {
		writeError(w, h.log, err)
		return
	}
	writeEmpty(w, http.StatusOK)
}
