// Package response sends consistent JSON responses across the API: one shape
// for payloads, one for errors.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body every failing endpoint returns. Details
// carries optional extra context, such as per-field validation messages.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil data
// writes the status alone, which is how 204 No Content responses are sent.
// Encoding failures are logged; the status line is already out by then.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes a structured error body. message is the user-facing
// description; details can be an underlying error string, a field map, or nil.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
