package client

import (
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client/internal/api"
)

const (
	// DefaultBackendTimeout bounds every call to the backend REST API.
	DefaultBackendTimeout = 10 * time.Second

	// DefaultClusterURL is used when no cluster URL option is given.
	DefaultClusterURL = "http://localhost:9200"

	// HeaderRequestID is attached to every outgoing request.
	HeaderRequestID = "X-Request-Id"

	// APIBasePath is the versioned prefix of the backend REST API.
	APIBasePath = api.BasePath
)

// metric label values for the two targets
const (
	targetBackend = "backend"
	targetCluster = "cluster"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the config admin backend and to the search cluster. The
// two targets use separate HTTP clients: the backend one carries a timeout
// and the versioned base path, the cluster one is rooted at the cluster URL.
//
// A Client is safe for concurrent use.
type Client struct {
	backendURL   string
	clusterURL   string
	backendHTTP  *http.Client
	clusterHTTP  *http.Client
	transport    http.RoundTripper
	userAgent    string
	newRequestID func() string
	debug        bool
	logger       *zerolog.Logger

	backend *resty.Client
	cluster *resty.Client

	Sources *SourceService
	Objects *ObjectService
	Cluster *ClusterService

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the backend at backendURL (scheme and host, the
// /api/v1 prefix is added). Additional options can be provided via
// functional arguments.
func New(backendURL string, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(backendURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		backendURL:   base,
		clusterURL:   DefaultClusterURL,
		backendHTTP:  &http.Client{Timeout: DefaultBackendTimeout},
		clusterHTTP:  &http.Client{},
		userAgent:    "searchadmin-go/" + Version,
		newRequestID: newRequestID,
		logger:       &log.Logger,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.transport == nil {
		c.transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	c.backendHTTP.Transport = c.wrapTransport(targetBackend)
	c.clusterHTTP.Transport = c.wrapTransport(targetCluster)

	c.backend = c.newResty(c.backendHTTP, c.backendURL+APIBasePath).
		SetHeader("Accept", "application/json")
	c.cluster = c.newResty(c.clusterHTTP, c.clusterURL)

	c.Sources = &SourceService{rc: c.backend}
	c.Objects = &ObjectService{rc: c.backend}
	c.Cluster = &ClusterService{rc: c.cluster, pollInterval: defaultPollInterval}
	return c, nil
}

// BackendURL returns the backend base URL including the API prefix.
func (c *Client) BackendURL() string { return c.backendURL + APIBasePath }

// ClusterURL returns the search cluster base URL.
func (c *Client) ClusterURL() string { return c.clusterURL }

// wrapTransport layers, from the outside in: metrics, request ids,
// optional debug logging, then the shared base transport.
func (c *Client) wrapTransport(target string) http.RoundTripper {
	base := c.transport
	if c.debug {
		base = &debugTransport{base: base, target: target, logger: c.logger}
	}
	return instrumentRoundTripper(target, &requestIDTransport{base: base, newID: c.newRequestID})
}

func (c *Client) newResty(hc *http.Client, baseURL string) *resty.Client {
	return resty.NewWithClient(hc).
		SetBaseURL(baseURL).
		SetHeader("User-Agent", c.userAgent)
}

// Close releases idle connections held by the base transport. Safe to call
// multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if ci, ok := c.transport.(interface{ CloseIdleConnections() }); ok {
		ci.CloseIdleConnections()
	}
	return nil
}

// normalizeBaseURL trims trailing slashes and checks the URL is absolute.
func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("base URL cannot be empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "", fmt.Errorf("base URL must start with http:// or https://: %q", raw)
	}
	return trimmed, nil
}
