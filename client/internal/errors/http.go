package errors

import (
	"encoding/json"
	stderrors "errors"
	"strings"
)

// ClassifyStatus maps an HTTP status code to an error category:
// - 4xx client errors (except 408 and 429) are irrecoverable
// - 5xx server errors are recoverable
// - anything unexpected is treated as recoverable
func ClassifyStatus(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError builds the error for a non-2xx reply.
func NewHTTPError(op, method, url string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		Op:         op,
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       string(body),
		Message:    messageFromBody(body),
		Category:   ClassifyStatus(statusCode),
	}
}

// messageFromBody pulls a human readable message out of the error shapes the
// two targets produce: {"message": "..."} from the backend and
// {"error": {"reason": "..."}} or {"error": "..."} from the cluster.
func messageFromBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed[0] != '{' {
		return ""
	}
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal([]byte(trimmed), &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if len(payload.Error) == 0 {
		return ""
	}
	var reason struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(payload.Error, &reason); err == nil && reason.Reason != "" {
		if reason.Type != "" {
			return reason.Type + ": " + reason.Reason
		}
		return reason.Reason
	}
	var s string
	if err := json.Unmarshal(payload.Error, &s); err == nil {
		return s
	}
	return ""
}

func as(err error, target any) bool { return stderrors.As(err, target) }
