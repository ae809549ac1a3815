// Package metrics instruments backend requests with Prometheus counters and
// exposes them on an optional debug listener.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "splitmate_backend_requests_total",
			Help: "Backend requests by method, path, and outcome.",
		},
		[]string{"method", "path", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "splitmate_backend_request_duration_seconds",
			Help:    "Backend request latency by path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)
)

// roundTripper records one observation per request. The label is the URL path
// only; filters live in the query string and would explode cardinality.
type roundTripper struct {
	next http.RoundTripper
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := rt.next.RoundTrip(req)

	outcome := "error"
	if err == nil {
		outcome = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(req.Method, req.URL.Path, outcome).Inc()
	requestDuration.WithLabelValues(req.URL.Path).Observe(time.Since(start).Seconds())

	return resp, err
}

// NewHTTPClient returns an http.Client whose transport records request
// metrics. No timeout is set; requests run to completion or failure.
func NewHTTPClient() *http.Client {
	return &http.Client{Transport: roundTripper{next: http.DefaultTransport}}
}

// Serve exposes /metrics on the given address. It blocks; run it in a
// goroutine and treat a returned error as a lost debug endpoint, not a fatal
// condition.
func Serve(addr string) error {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return http.ListenAndServe(addr, r)
}
