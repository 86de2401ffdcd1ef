package api

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// recorded is one request seen by a recorder server.
type recorded struct {
	Method      string
	RequestURI  string
	ContentType string
	Body        string
}

// recorder is an httptest server that records every request and replies
// with a fixed status and body.
type recorder struct {
	srv *httptest.Server

	mu   sync.Mutex
	reqs []recorded
}

func newRecorder(t *testing.T, status int, body string) *recorder {
	t.Helper()
	rec := &recorder{}
	rec.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.reqs = append(rec.reqs, recorded{
			Method:      r.Method,
			RequestURI:  r.RequestURI,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(b),
		})
		rec.mu.Unlock()
		if body != "" && body[0] != '{' && body[0] != '[' {
			w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
		} else {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(rec.srv.Close)
	return rec
}

// backend returns a resty client rooted at the versioned API path.
func (r *recorder) backend() *resty.Client {
	return resty.NewWithClient(r.srv.Client()).SetBaseURL(r.srv.URL + BasePath)
}

// cluster returns a resty client rooted at the server itself.
func (r *recorder) cluster() *resty.Client {
	return resty.NewWithClient(r.srv.Client()).SetBaseURL(r.srv.URL)
}

func (r *recorder) requests() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.reqs...)
}

func failingClient() *resty.Client {
	return resty.NewWithClient(&http.Client{Transport: &errRT{}}).SetBaseURL("http://example.com" + BasePath)
}
