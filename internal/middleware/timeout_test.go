package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mds-studio/mds-backend/internal/middleware"
	"github.com/mds-studio/mds-backend/internal/respond"
)

// blockUntilDone waits for the request deadline and writes nothing, like a
// handler whose store call was cancelled.
var blockUntilDone = http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
	<-r.Context().Done()
})

func TestTimeoutHandler_deadlineBecomes504Envelope(t *testing.T) {
	h := middleware.NewTimeoutHandler(10 * time.Millisecond)(blockUntilDone)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/1", nil))

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	requireEnvelope(t, rec, respond.MsgTimeout)
}

// A handler that answers after the deadline (list returns [] on a store
// fault) keeps its response; no second status is written.
func TestTimeoutHandler_writtenResponseWins(t *testing.T) {
	h := middleware.NewTimeoutHandler(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		respond.JSON(w, http.StatusOK, []string{})
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTimeoutHandler_fastRequestUntouched(t *testing.T) {
	h := middleware.NewTimeoutHandler(time.Second)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTimeoutHandler_setsDeadline(t *testing.T) {
	var ok bool
	h := middleware.NewTimeoutHandler(time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.True(t, ok)
}
