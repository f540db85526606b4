// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stepsync/stepsync/internal/adapters/modelstore"
	"github.com/stepsync/stepsync/internal/domain/scoring"
	"github.com/stepsync/stepsync/internal/domain/types"
	"github.com/stepsync/stepsync/pkg/logger"
	"github.com/stepsync/stepsync/pkg/metrics"
)

// Feature names reported by /model-info, in scoring order.
var featureNames = []string{"age", "bmi", "workout_frequency"} //nolint:gochecknoglobals // fixed model schema

const modelType = "Health Score Model"

// Service owns the model store and scoring engine and implements the API
// dependencies for the prediction endpoints.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  *modelstore.Store
	engine *scoring.Engine

	// Configuration
	modelPath        string
	strictValidation bool

	// State
	started     bool
	startedAt   time.Time
	predictions atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithModelPath sets the model artifact path.
func WithModelPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.modelPath = path
		}
	}
}

// WithStrictValidation toggles strict input range validation.
func WithStrictValidation(strict bool) Option {
	return func(s *Service) {
		s.strictValidation = strict
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		modelPath:        "difficulty_model.yaml",
		strictValidation: true,
		logger:           nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the model artifact and builds the scoring engine. A failed
// load is fatal: the service must not serve traffic without thresholds.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "loading model artifact", logger.String("path", s.modelPath))

	loadStart := time.Now()
	store, err := modelstore.Load(ctx, s.modelPath)
	if err != nil {
		metrics.SetModelLoaded(false)
		return fmt.Errorf("start service: %w", err)
	}
	s.store = store
	s.engine = scoring.NewEngine(store.Thresholds())

	metrics.SetModelLoaded(true)
	metrics.RecordModelLoadDuration(float64(time.Since(loadStart).Milliseconds()))

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "prediction service started",
		logger.Float64("easyThreshold", store.Thresholds().Easy),
		logger.Float64("mediumThreshold", store.Thresholds().Medium),
		logger.Bool("strictValidation", s.strictValidation),
	)

	return nil
}

// Stop marks the service stopped. There are no background components to
// tear down; predictions in flight simply complete.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "prediction service stopped",
		logger.Int64("predictionsServed", s.predictions.Load()),
	)
}

// Predict validates (when strict) and evaluates one set of user metrics.
func (s *Service) Predict(ctx context.Context, m scoring.Metrics) (scoring.Result, error) {
	start := time.Now()

	if s.strictValidation {
		if err := scoring.Validate(m); err != nil {
			metrics.RecordValidationError()
			return scoring.Result{}, err
		}
	}

	result := s.engine.Evaluate(m)
	s.predictions.Add(1)

	metrics.RecordPrediction(string(result.Tier), result.HealthScore, result.Confidence)
	metrics.RecordPredictionLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	s.logger.Debug(ctx, "prediction served",
		logger.Float64("age", m.Age),
		logger.Float64("bmi", m.BMI),
		logger.Float64("workoutFrequency", m.WorkoutFrequency),
		logger.Float64("healthScore", result.HealthScore),
		logger.String("tier", string(result.Tier)),
	)

	return result, nil
}

// ModelInfo returns the introspection payload for /model-info and /health.
func (s *Service) ModelInfo(_ context.Context) types.ModelInfo {
	return types.ModelInfo{
		ModelType:    modelType,
		FeatureNames: featureNames,
		Thresholds:   s.store.Thresholds(),
		Stats:        s.store.Stats(),
	}
}

// ModelLoaded reports whether the model artifact was loaded.
func (s *Service) ModelLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store != nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"modelPath":        s.modelPath,
		"modelLoaded":      s.store != nil,
		"strictValidation": s.strictValidation,
		"predictions":      s.predictions.Load(),
	}

	if s.started {
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		stats["easyThreshold"] = s.store.Thresholds().Easy
		stats["mediumThreshold"] = s.store.Thresholds().Medium
	}

	return stats
}
