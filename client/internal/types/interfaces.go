package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound matches any error reporting an HTTP 404 from either target.
var ErrNotFound = errors.New("resource not found")

// ErrNoFields is returned when a mapping is requested for an object without fields.
var ErrNoFields = errors.New("search object must have at least one field")
