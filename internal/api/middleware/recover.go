package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/handover-labs/handover/internal/api/shared"
)

// RecoverMiddleware converts handler panics into the standard JSON error
// envelope instead of a bare 500 and an aborted connection. The panic value
// and stack stay in the logs only.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slog.Error("panic recovered while serving request",
					slog.Any("panic", rec),
					slog.String("path", r.URL.Path),
					slog.String("method", r.Method),
					slog.String("trace_id", shared.GetTraceID(r.Context())),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Internal server error",
				)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
