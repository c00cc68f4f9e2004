package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/resource-registry/internal/domain"
)

const genericMessage = "internal server error"

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest, domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindNotImplemented:
		return http.StatusNotImplemented
	case domain.KindUnexpected:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// statusCode turns a status into an envelope code, e.g. 500 into
// INTERNAL_SERVER_ERROR.
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// writeError classifies err and renders the error envelope. Unexpected
// errors are logged with the request context and rendered generically.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	appErr := domain.Classify(err)
	status := StatusFor(appErr.Kind)

	env := appErr.Envelope(statusCode(status))
	if appErr.Kind == domain.KindUnexpected {
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		env = domain.Envelope{Code: statusCode(status), Message: genericMessage}
	}

	writeJSON(w, status, env)
}
