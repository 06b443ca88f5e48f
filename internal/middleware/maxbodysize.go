package middleware

import (
	"net/http"

	"github.com/mds-studio/mds-backend/internal/respond"
)

// NewMaxBodySizeHandler returns a middleware that caps request bodies at limit
// bytes. A request that advertises a larger Content-Length is rejected with a
// 413 envelope before the next handler runs. Otherwise the body is wrapped in
// http.MaxBytesReader so a streamed body fails on read once it passes the cap;
// handlers recognise that as *http.MaxBytesError.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Connection", "close")
				respond.Error(w, http.StatusRequestEntityTooLarge, respond.MsgBodyTooLarge)
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
