// Package errors describes failures returned by the search admin SDK.
// Non-2xx replies keep the status and body the remote service sent, plus a
// category that polling helpers use to decide whether another attempt is
// worthwhile.
package errors

import (
	"fmt"

	"github.com/searchplatform/searchadmin/client/internal/types"
)

// ErrorCategory determines how errors should be handled by polling helpers.
type ErrorCategory int

const (
	// Recoverable errors may succeed on a later attempt.
	// Examples: 500 Internal Server Error, 429, network failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors will not change by asking again.
	// Examples: 400 Bad Request, 401 Unauthorized, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// HTTPError is a non-2xx reply from the backend or the search cluster.
type HTTPError struct {
	Op         string // SDK operation, e.g. "get source"
	Method     string
	URL        string
	StatusCode int
	Body       string // raw response body
	Message    string // "message" field of a JSON error body, if any
	Category   ErrorCategory
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("%s: %s %s: HTTP %d", e.Op, e.Method, e.URL, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is lets errors.Is(err, types.ErrNotFound) match 404 replies.
func (e *HTTPError) Is(target error) bool {
	return target == types.ErrNotFound && e.StatusCode == 404
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	var he *HTTPError
	if as(err, &he) {
		return he.Category == Irrecoverable
	}
	return false
}
