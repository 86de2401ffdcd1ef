package client

// Functional options that configure the Client during construction.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options run before the transports are assembled, so transport-related
// options apply to both the backend and the cluster client.
type Option func(*Client) error

// WithHTTPTimeout sets the timeout of the backend HTTP client. The value
// must be greater than zero.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse bound on a single exchange including reading the body.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.backendHTTP.Timeout = d
		return nil
	}
}

// WithClusterURL points cluster operations at the given search cluster.
func WithClusterURL(raw string) Option {
	return func(c *Client) error {
		u, err := normalizeBaseURL(raw)
		if err != nil {
			return fmt.Errorf("cluster url: %w", err)
		}
		c.clusterURL = u
		return nil
	}
}

// WithClusterTimeout bounds each cluster request. Zero disables the bound,
// which is the default.
func WithClusterTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("cluster timeout must be >= 0")
		}
		c.clusterHTTP.Timeout = d
		return nil
	}
}

// WithTransport replaces the base round tripper shared by both targets.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport cannot be nil")
		}
		c.transport = rt
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level when
// enabled is true. Dumps include headers and bodies; keep it out of
// production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return fmt.Errorf("user agent cannot be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithLogger sets the logger used by the debug transport. Defaults to the
// global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = &l
		return nil
	}
}

// WithRequestIDFunc replaces the X-Request-Id generator (a random UUID by
// default). Ids set through ContextWithRequestID still take precedence.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) error {
		if fn == nil {
			return fmt.Errorf("request id func cannot be nil")
		}
		c.newRequestID = fn
		return nil
	}
}
