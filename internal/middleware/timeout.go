package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mds-studio/mds-backend/internal/respond"
)

// NewTimeoutHandler bounds each request with a context deadline of d.
// When the deadline passes and next has not written a response, a 504
// envelope is sent. A response next already started is left alone.
func NewTimeoutHandler(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				respond.Error(ww, http.StatusGatewayTimeout, respond.MsgTimeout)
			}
		})
	}
}
