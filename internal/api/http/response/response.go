package response

import (
	"encoding/json"
	"net/http"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the common shape of every JSON response body.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	User    any    `json:"user,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, Envelope{Status: StatusError, Message: message})
}
