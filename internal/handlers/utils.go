package handlers

import (
	"encoding/json"
	"net/http"

	"cloud-gallery/internal/logging"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, map[string]string{"error": message})
}

// userID extracts the caller identity supplied by the identity
// collaborator in front of this service. The service itself performs no
// authentication.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

// requireUser writes a 401 and returns "" when no identity was supplied.
func requireUser(w http.ResponseWriter, r *http.Request) string {
	id := userID(r)
	if id == "" {
		writeJSONError(w, "missing X-User-ID header", http.StatusUnauthorized)
	}
	return id
}
