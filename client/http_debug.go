package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps each request and response through the client's
// logger at debug level.
//
// Enable it with WithDebugLogging(true) or by exporting SEARCHADMIN_DEBUG=true
// (DEBUG=true also works). Dumps carry full bodies.
type debugTransport struct {
	base   http.RoundTripper
	target string
	logger *zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.logger.Debug().
			Str("target", dt.target).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).
			Str("target", dt.target).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().
			Str("target", dt.target).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether SEARCHADMIN_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("SEARCHADMIN_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
