// Package metrics holds the Prometheus collectors of the service.
//
// Collectors are registered on the default registry through promauto and
// exposed at /metrics.
package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "route"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Calls to the monitoring API, by endpoint and result (success, failure, rejected)",
		},
		[]string{"endpoint", "result"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Monitoring API latency including retries",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)

	UnclassifiedStatuses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unclassified_status_accounts_total",
			Help: "Accounts whose status label matched no known category",
		},
		[]string{"platform"},
	)

	SnapshotFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_snapshot_fallbacks_total",
			Help: "Summaries served from the local snapshot store because the upstream failed",
		},
	)

	SnapshotWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_snapshot_write_errors_total",
			Help: "Failed snapshot writes",
		},
	)
)

func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func RecordUpstream(endpoint, result string, d time.Duration) {
	UpstreamRequests.WithLabelValues(endpoint, result).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// Platform names come from the upstream; past maxPlatformLabels distinct
// values they are folded into overflowPlatform.
const (
	maxPlatformLabels = 64
	maxPlatformLen    = 64
	overflowPlatform  = "_other"
)

var (
	platformMu     sync.Mutex
	platformLabels = make(map[string]struct{})
)

func platformLabel(platform string) string {
	p := strings.ToLower(strings.TrimSpace(platform))
	if p == "" || len(p) > maxPlatformLen {
		return overflowPlatform
	}

	platformMu.Lock()
	defer platformMu.Unlock()
	if _, ok := platformLabels[p]; ok {
		return p
	}
	if len(platformLabels) >= maxPlatformLabels {
		return overflowPlatform
	}
	platformLabels[p] = struct{}{}
	return p
}

func RecordUnclassified(platform string, count int64) {
	if count <= 0 {
		return
	}
	UnclassifiedStatuses.WithLabelValues(platformLabel(platform)).Add(float64(count))
}
