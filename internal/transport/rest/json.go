package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads one JSON value of at most maxBytes into dst. Any failure
// is a BadRequest.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(body)

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return domain.NewBadRequest("request body too large")
		case errors.Is(err, io.EOF):
			return domain.NewBadRequest("request body is empty")
		default:
			return domain.NewBadRequest("malformed JSON body")
		}
	}
	if dec.More() {
		return domain.NewBadRequest("request body must hold a single JSON value")
	}
	return nil
}
