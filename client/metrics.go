package client

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchadmin_client",
			Name:      "requests_total",
			Help:      "HTTP requests issued by the SDK, by target, method and status code.",
		},
		[]string{"target", "code", "method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchadmin_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of SDK HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"target", "method"},
	)

	requestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "searchadmin_client",
			Name:      "requests_in_flight",
			Help:      "SDK HTTP requests currently awaiting a response.",
		},
		[]string{"target"},
	)
)

// instrumentRoundTripper counts, times and tracks in-flight requests for one
// target around next.
func instrumentRoundTripper(target string, next http.RoundTripper) http.RoundTripper {
	labels := prometheus.Labels{"target": target}
	return promhttp.InstrumentRoundTripperInFlight(requestsInFlight.With(labels),
		promhttp.InstrumentRoundTripperCounter(requestsTotal.MustCurryWith(labels),
			promhttp.InstrumentRoundTripperDuration(requestDuration.MustCurryWith(labels), next),
		),
	)
}
