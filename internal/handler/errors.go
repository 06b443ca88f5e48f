package handler

import (
	"errors"
	"net/http"

	"github.com/mds-studio/mds-backend/internal/domain"
	"github.com/mds-studio/mds-backend/internal/respond"
)

// Messages for failures rejected before reaching the service layer.
const (
	msgBodyRequired     = "Request body is required."
	msgMalformedBody    = "Request body is not valid JSON for this resource."
	msgBodyTooLarge     = respond.MsgBodyTooLarge
	msgInvalidID        = "Path parameter 'id' must be an integer."
	msgInternal         = respond.MsgInternal
	msgRouteNotFound    = "Route not found."
	msgMethodNotAllowed = "Method not allowed."
)

// ErrorResponse is the envelope returned with every non-2xx status.
type ErrorResponse = respond.ErrorResponse

// statusFor maps an error kind to its HTTP status.
func statusFor(k domain.Kind) int {
	switch k {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// writeError renders the envelope with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	respond.Error(w, status, message)
}

// writeServiceError renders an error returned by the service layer.
// Only *domain.Error messages reach the caller; anything else is logged and
// replaced with a generic 500 so no internal detail leaks.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		writeError(w, statusFor(de.Kind), de.Message)
		return
	}
	s.log.ErrorContext(r.Context(), "handler: unclassified error", "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// writeDecodeError renders a body decoding failure: 413 when the size limit
// was hit, 422 otherwise.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	case errors.Is(err, errBodyRequired):
		writeError(w, http.StatusUnprocessableEntity, msgBodyRequired)
	default:
		writeError(w, http.StatusUnprocessableEntity, msgMalformedBody)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	respond.JSON(w, status, v)
}
