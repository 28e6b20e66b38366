package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fintrack/internal/apperr"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy to HTTP status codes. Anything
// unclassified is logged and returned as a fixed 500 body so internal
// detail never reaches the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch apperr.KindOf(err) {
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.Auth:
		status = http.StatusUnauthorized
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	default:
		h.log.Errorf("Unhandled error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": apperr.MessageOf(err, "internal server error")})
}

// decodeJSON decodes a request body, preserving number precision via
// json.Number so amounts accept both numeric and string forms.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return apperr.Validationf("invalid JSON body")
	}
	return nil
}

// pathID extracts the numeric {id} path variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperr.Validationf("invalid id")
	}
	return id, nil
}

// intQuery parses an optional integer query parameter; absent means zero.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validationf("%s must be an integer", name)
	}
	return v, nil
}
