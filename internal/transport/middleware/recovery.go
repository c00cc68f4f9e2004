package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/resource-registry/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into the 500 error
// envelope and logs it with the stack. http.ErrAbortHandler is re-raised so
// the server can abort the response as usual.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := append([]slog.Attr{
					slog.Any("error", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				}, ctxutil.LogAttrs(r.Context())...)
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
