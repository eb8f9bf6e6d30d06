package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/journalapp/journal/internal/apperror"
)

// Recoverer recovers from panics, logs them with the request ID and
// answers with the generic unexpected-error JSON body.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("panic recovered",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				writeError(w, http.StatusInternalServerError, apperror.UnexpectedMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
