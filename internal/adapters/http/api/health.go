// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/stepsync/stepsync/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps Dependencies
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps Dependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// healthResponse mirrors the health payload of the original API.
type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	ModelInfo   any    `json:"model_info,omitempty"`
}

// HandleHealth handles GET /health requests with a JSON status payload.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	resp := healthResponse{
		Status:      "healthy",
		ModelLoaded: h.deps.ModelLoaded(),
	}
	if resp.ModelLoaded {
		resp.ModelInfo = h.deps.ModelInfo(r.Context())
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleMetrics handles GET /healthz requests by serving the Prometheus
// scrape from the custom metrics registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
