package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "journal"

// PrometheusRecorder exposes metrics through a dedicated Prometheus registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	signUps      *prometheus.CounterVec
	signIns      *prometheus.CounterVec
	entryOps     *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPrometheus creates a recorder with its own registry, including Go runtime
// and process collectors.
func NewPrometheus() *PrometheusRecorder {
	r := &PrometheusRecorder{
		registry: prometheus.NewRegistry(),
		signUps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "sign_ups_total",
			Help:      "Sign-up attempts by outcome.",
		}, []string{"status"}),
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "sign_ins_total",
			Help:      "Sign-in attempts by outcome.",
		}, []string{"status"}),
		entryOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entries",
			Name:      "mutations_total",
			Help:      "Successful entry mutations by operation.",
		}, []string{"op"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.signUps,
		r.signIns,
		r.entryOps,
		r.httpRequests,
		r.httpDuration,
	)

	return r
}

// Handler serves the registry in Prometheus exposition format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry returns the underlying registry.
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// IncSignUp counts a sign-up attempt by outcome.
func (r *PrometheusRecorder) IncSignUp(status string) {
	r.signUps.WithLabelValues(status).Inc()
}

// IncSignIn counts a sign-in attempt by outcome.
func (r *PrometheusRecorder) IncSignIn(status string) {
	r.signIns.WithLabelValues(status).Inc()
}

// IncEntryCreated counts a created entry.
func (r *PrometheusRecorder) IncEntryCreated() {
	r.entryOps.WithLabelValues("create").Inc()
}

// IncEntryUpdated counts an updated entry.
func (r *PrometheusRecorder) IncEntryUpdated() {
	r.entryOps.WithLabelValues("update").Inc()
}

// IncEntryDeleted counts a deleted entry.
func (r *PrometheusRecorder) IncEntryDeleted() {
	r.entryOps.WithLabelValues("delete").Inc()
}

// ObserveHTTPRequest records a handled HTTP request.
func (r *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
