package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/resource-registry/internal/domain"
	"github.com/heartmarshall/resource-registry/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Identity resolves the caller's user ID and stores it in the request
// context. The header set by the upstream auth proxy wins; otherwise a
// bearer token is checked when validator is non-nil. Requests carrying
// neither pass through anonymously and a malformed identity is rejected
// with 400.
func Identity(header string, validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := strings.TrimSpace(r.Header.Get(header)); raw != "" {
				userID, err := uuid.Parse(raw)
				if err != nil || userID == uuid.Nil {
					writeError(w, http.StatusBadRequest, domain.KindBadRequest.Code(), "malformed "+header+" header")
					return
				}
				next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
				return
			}

			token := extractBearerToken(r)
			if token == "" || validator == nil {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusBadRequest, domain.KindBadRequest.Code(), "invalid bearer token")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
