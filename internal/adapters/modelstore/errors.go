package modelstore

import (
	"errors"
)

// Sentinel kinds for artifact load failures. All of them are fatal at startup.
var (
	ErrArtifactNotFound  = errors.New("model artifact not found")
	ErrLoadArtifact      = errors.New("load model artifact failed")
	ErrMissingComponent  = errors.New("model artifact missing required component")
	ErrInvalidThresholds = errors.New("model artifact thresholds out of order")
)
