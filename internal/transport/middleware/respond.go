package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

// writeError renders the error envelope shared with the REST handlers.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.Envelope{Code: code, Message: message}) //nolint:errcheck
}
