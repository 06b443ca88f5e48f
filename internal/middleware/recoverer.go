package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mds-studio/mds-backend/internal/respond"
)

// NewRecoverer returns a middleware that turns a panic in next into a logged
// 500 envelope. If the handler already started the response, only the log
// line is written. http.ErrAbortHandler is re-panicked for net/http to handle.
func NewRecoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler { //nolint:errorlint
					panic(rvr)
				}
				log.ErrorContext(r.Context(), "panic recovered",
					"panic", rvr,
					"request_id", chimiddleware.GetReqID(r.Context()),
					"stack", string(debug.Stack()),
				)
				if ww.Status() == 0 {
					respond.Error(ww, http.StatusInternalServerError, respond.MsgInternal)
				}
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
