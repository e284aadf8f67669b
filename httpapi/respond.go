package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quayside-io/hq"
)

// writeJSON marshals v and writes it with status, matching the
// teacher's convention of never leaving a response half-written on a
// marshal failure: the body is built before any bytes reach the wire.
func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error("marshal response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// writeError maps hq's sentinel error taxonomy to a status code.
// Anything not recognized as one of those sentinels surfaces as a
// generic 500.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, hq.ErrBadInput):
		status = http.StatusBadRequest
	case errors.Is(err, hq.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, hq.ErrConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Error("request failed", "err", err)
	}
	http.Error(w, err.Error(), status)
}
