package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/quayside-io/hq/delivery"

	"github.com/google/uuid"
)

type enqueueResponse struct {
	MessageID uuid.UUID `json:"message_id"`
}

type messageView struct {
	ID       uuid.UUID       `json:"id"`
	Args     json.RawMessage `json:"args"`
	Queue    string          `json:"queue"`
	Attempts uint32          `json:"attempts"`
}

func newMessageView(r *delivery.Record) *messageView {
	if r == nil {
		return nil
	}
	return &messageView{
		ID:       r.ID,
		Args:     r.Args,
		Queue:    r.Queue,
		Attempts: r.Attempts,
	}
}

func (h *Handler) enqueue(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	id, err := h.engine.Enqueue(r.Context(), name, json.RawMessage(body))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveEnqueue()
	}
	writeJSON(w, h.log, http.StatusOK, enqueueResponse{MessageID: id})
}

func (h *Handler) receive(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	rec, err := h.engine.Receive(r.Context(), name)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if rec != nil && h.metrics != nil {
		h.metrics.ObserveReceive(name)
	}
	writeJSON(w, h.log, http.StatusOK, newMessageView(rec))
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}
	if err := h.engine.Complete(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveComplete()
	}
	writeEmpty(w, http.StatusOK)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid message id", http.StatusBadRequest)
		return
	}
	if err := h.engine.Fail(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveFail()
	}
	writeEmpty(w, http.StatusOK)
}
