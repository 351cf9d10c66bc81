package httphandlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"envlinks/internal/eventbus"
	"envlinks/internal/types"
)

type (
	response struct {
		Error   bool        `json:"error"`
		Message string      `json:"message"`
		Data    interface{} `json:"data"`
	}
)

func badRequest(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err)
}

func serverError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, err)
}

func unavailable(w http.ResponseWriter, err error) {
	writeError(w, http.StatusServiceUnavailable, err)
}

// settingsError maps the error taxonomy onto status codes.
func settingsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrParse):
		badRequest(w, err)
	case errors.Is(err, types.ErrStorageUnavailable):
		unavailable(w, err)
	default:
		serverError(w, err)
	}
}

func ok(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	r := response{
		Error:   false,
		Message: message,
		Data:    data,
	}
	b, _ := json.Marshal(r)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, errorCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errorCode)
	errmsg := ""
	if err != nil {
		errmsg = err.Error()
	}

	r := response{
		Error:   true,
		Message: errmsg,
	}
	data, _ := json.Marshal(r)
	_, _ = w.Write(data)
}

// writeSSEEvent writes one event in text/event-stream framing.
func writeSSEEvent(w http.ResponseWriter, ev eventbus.Event) error {
	bytes, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", ev.ID, ev.Type, bytes)
	if err != nil {
		return err
	}
	flusher, ok := w.(http.Flusher)
	if ok {
		flusher.Flush()
	}
	return nil
}
