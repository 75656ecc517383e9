package handler

import (
	"fmt"
	"net/http"

	"github.com/vitalog/vitalog/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "vitalog_users_created_total %d\n", snap.UsersCreated)
	writeMetric(w, "vitalog_users_updated_total %d\n", snap.UsersUpdated)
	writeMetric(w, "vitalog_water_logs_created_total %d\n", snap.WaterLogsCreated)
	writeMetric(w, "vitalog_progress_logs_created_total %d\n", snap.ProgressLogsCreated)
	writeMetric(w, "vitalog_motivations_served_total %d\n", snap.MotivationsServed)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
