package fakeadmin

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// recoverMiddleware turns handler panics into a logged HTTP 500.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Internal Server Error","code":500}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// logMiddleware logs each request at debug level.
func logMiddleware(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Debug().
				Str("service", service).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("request_id", r.Header.Get("X-Request-Id")).
				Msg("fake request")
			next.ServeHTTP(w, r)
		})
	}
}
