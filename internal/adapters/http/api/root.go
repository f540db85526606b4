// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RootHandler serves the API banner.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// rootResponse lists the service endpoints for discoverability.
type rootResponse struct {
	Status        string            `json:"status"`
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// HandleRoot handles GET / requests. Unknown paths fall through to 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Status:  "healthy",
		Message: "StepSync Health Score API",
		Version: Version,
		Endpoints: map[string]string{
			"predict":    "/predict",
			"health":     "/health",
			"model_info": "/model-info",
			"stats":      "/stats",
		},
		Documentation: "/api-docs",
	})
}
