package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"garrison/internal/ledger"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// validationError maps an engine rejection to the right status code:
// role or base-ownership violations are 403, malformed payloads 400.
func validationError(w http.ResponseWriter, verr *ledger.ValidationError) {
	status := http.StatusBadRequest
	if verr.Code == ledger.CodeForbidden {
		status = http.StatusForbidden
	}
	jsonResponse(w, status, verr)
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
