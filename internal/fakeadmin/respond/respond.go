// Package respond writes the reply shapes of the two faked services.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the backend's error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// ClusterCause is one entry of an OpenSearch error.
type ClusterCause struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// ClusterError is the OpenSearch error envelope.
type ClusterError struct {
	Error struct {
		RootCause []ClusterCause `json:"root_cause"`
		ClusterCause
	} `json:"error"`
	Status int `json:"status"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteText writes a plain text body, the way _cat endpoints answer.
func WriteText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

// WriteError writes a standardized backend error response
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Code:    statusCode,
		Message: message,
	})
}

// WriteBadRequest writes a 400 Bad Request response
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteClusterError writes an OpenSearch style error.
func WriteClusterError(w http.ResponseWriter, statusCode int, errType, reason string) {
	var body ClusterError
	cause := ClusterCause{Type: errType, Reason: reason}
	body.Error.RootCause = []ClusterCause{cause}
	body.Error.ClusterCause = cause
	body.Status = statusCode
	WriteJSON(w, statusCode, body)
}
