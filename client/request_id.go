package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// ContextWithRequestID makes requests issued with ctx carry id as their
// X-Request-Id instead of a generated one.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// requestIDTransport sets X-Request-Id on requests that don't carry one.
// The header is resolved after resty merged client headers, so a value set
// by the caller always wins.
type requestIDTransport struct {
	base  http.RoundTripper
	newID func() string
}

func (rt *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(HeaderRequestID) != "" {
		return rt.base.RoundTrip(req)
	}
	id, _ := req.Context().Value(requestIDKey{}).(string)
	if id == "" {
		id = rt.newID()
	}
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set(HeaderRequestID, id)
	return rt.base.RoundTrip(r)
}

func newRequestID() string { return uuid.NewString() }
