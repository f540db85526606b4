// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/stepsync/stepsync/internal/domain/scoring"
	"github.com/stepsync/stepsync/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Predict evaluates one set of user metrics.
	Predict(ctx context.Context, m scoring.Metrics) (scoring.Result, error)

	// ModelInfo exposes the loaded model for introspection endpoints.
	ModelInfo(ctx context.Context) types.ModelInfo

	// ModelLoaded reports whether the model artifact was loaded.
	ModelLoaded() bool
}

// Version is reported by the root and health endpoints.
const Version = "3.0.0"

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	predictHandler   *PredictHandler
	modelInfoHandler *ModelInfoHandler
	rootHandler      *RootHandler
}

// NewServer creates a new API server with all handlers. debugInfo controls
// whether prediction responses carry the debug block.
func NewServer(deps Dependencies, statsProvider StatsProvider, debugInfo bool, maxBodyBytes int64) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(deps),
		statsHandler:     NewStatsHandler(statsProvider),
		predictHandler:   NewPredictHandler(deps, debugInfo, maxBodyBytes),
		modelInfoHandler: NewModelInfoHandler(deps),
		rootHandler:      NewRootHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleMetrics, "healthz"))
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/predict", MetricsMiddleware(s.predictHandler.HandlePredict, "predict"))
	mux.HandleFunc("/model-info", MetricsMiddleware(s.modelInfoHandler.HandleModelInfo, "model_info"))
	mux.HandleFunc("/", MetricsMiddleware(s.rootHandler.HandleRoot, "root"))
}

// predictionResponse mirrors the OpenAPI schema for POST /predict.
// Field names are camelCase for JavaScript clients; floats are rounded to
// three decimals for presentation.
type predictionResponse struct {
	DifficultyLevel string     `json:"difficultyLevel"`
	ConfidenceScore float64    `json:"confidenceScore"`
	Recommendation  string     `json:"recommendation"`
	HealthScore     float64    `json:"healthScore"`
	DebugInfo       *debugInfo `json:"debugInfo,omitempty"`
}

type debugInfo struct {
	InputData       map[string]float64 `json:"inputData"`
	HealthScore     float64            `json:"healthScore"`
	Thresholds      types.Thresholds   `json:"thresholds"`
	ScoreComponents scoring.Components `json:"scoreComponents"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validationErrorResponse mirrors the structured 422 payload clients of the
// original API relied on.
type validationErrorResponse struct {
	Status  string   `json:"status"`
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
	Help    string   `json:"help"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// round3 rounds to three decimal places for response presentation.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
