package client

import (
	"errors"

	apierrors "github.com/searchplatform/searchadmin/client/internal/errors"
	"github.com/searchplatform/searchadmin/client/internal/types"
)

// APIError is a non-2xx reply from the backend or the cluster. It carries
// the operation, method, URL, status and raw body.
type APIError = apierrors.HTTPError

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	ErrNotFound = types.ErrNotFound
	ErrNoFields = types.ErrNoFields
)

// IsNotFound reports whether err is a 404 from either target.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// StatusCode returns the HTTP status of an *APIError in err's chain, or 0.
func StatusCode(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// IsRecoverable reports whether asking again might succeed: transport
// failures and 5xx/408/429 replies.
func IsRecoverable(err error) bool {
	return err != nil && !apierrors.IsIrrecoverable(err)
}
