package handler

import (
	"net/http"
)

// MetricsHandler exposes the metrics registry.
type MetricsHandler struct {
	exporter http.Handler
}

// NewMetricsHandler wraps an exposition handler such as
// metrics.PrometheusRecorder.Handler().
func NewMetricsHandler(exporter http.Handler) *MetricsHandler {
	return &MetricsHandler{exporter: exporter}
}

// Metrics serves metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.exporter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	h.exporter.ServeHTTP(w, r)
}
