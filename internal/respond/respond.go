// Package respond writes JSON responses and the error envelope shared by the
// handlers and the middleware stack, so every non-2xx status has one shape.
package respond

import (
	"encoding/json"
	"net/http"
	"time"
)

// Messages for failures produced outside the handlers.
const (
	MsgBodyTooLarge = "Request body is too large."
	MsgInternal     = "Internal server error."
	MsgTimeout      = "Request timed out."
)

// ErrorResponse is the envelope returned with every non-2xx status.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck
	json.NewEncoder(w).Encode(v)
}

// Error writes the envelope with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message, Timestamp: time.Now().UTC()})
}
