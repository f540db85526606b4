// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// ModelPath points at the model artifact holding the difficulty
	// thresholds and score statistics.
	ModelPath string `koanf:"model_path"`

	// StrictValidation rejects age outside [18,80], bmi outside [15,40] and
	// workout frequency outside [0,7] before scoring.
	StrictValidation bool `koanf:"strict_validation"`

	// DebugInfo includes score components and thresholds in prediction responses.
	DebugInfo bool `koanf:"debug_info"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// MaxBodyBytes caps the size of request bodies on POST /predict.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8000",
		ModelPath:          "difficulty_model.yaml",
		StrictValidation:   true,
		DebugInfo:          true,
		CORSAllowedOrigins: []string{"*"},
		MaxBodyBytes:       1 << 20,
	}
}
