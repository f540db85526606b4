// Package modelstore loads the persisted model artifact holding the
// difficulty thresholds and health score statistics. The artifact is read
// exactly once at process startup; the store is immutable afterwards and
// safe for concurrent reads without locking.
package modelstore

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stepsync/stepsync/internal/domain/types"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Keys the artifact must carry. A missing key is a fatal load error.
var requiredKeys = []string{ //nolint:gochecknoglobals // fixed artifact schema
	"easy_threshold",
	"medium_threshold",
	"health_score_stats",
}

// artifact mirrors the on-disk YAML schema.
type artifact struct {
	EasyThreshold   float64     `koanf:"easy_threshold"`
	MediumThreshold float64     `koanf:"medium_threshold"`
	Stats           types.Stats `koanf:"health_score_stats"`
}

// Store exposes the loaded thresholds and statistics read-only.
type Store struct {
	path       string
	thresholds types.Thresholds
	stats      types.Stats
	loadedAt   time.Time
}

// Load reads and validates the model artifact at path. It fails fast: any
// missing file, missing required key, or threshold ordering violation is
// returned as an error and the caller must not serve traffic.
func Load(_ context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadArtifact, err)
	}

	for _, key := range requiredKeys {
		if !k.Exists(key) {
			return nil, fmt.Errorf("%w: %s", ErrMissingComponent, key)
		}
	}

	var a artifact
	if err := k.UnmarshalWithConf("", &a, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadArtifact, err)
	}

	if a.EasyThreshold < 0 || a.EasyThreshold > a.MediumThreshold || a.MediumThreshold > 1 {
		return nil, fmt.Errorf("%w: easy=%v medium=%v", ErrInvalidThresholds, a.EasyThreshold, a.MediumThreshold)
	}

	return &Store{
		path:       path,
		thresholds: types.Thresholds{Easy: a.EasyThreshold, Medium: a.MediumThreshold},
		stats:      a.Stats,
		loadedAt:   time.Now(),
	}, nil
}

// Thresholds returns the loaded score thresholds.
func (s *Store) Thresholds() types.Thresholds {
	return s.thresholds
}

// Stats returns the loaded health score statistics.
func (s *Store) Stats() types.Stats {
	return s.stats
}

// Path returns the artifact path the store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// LoadedAt returns the time the artifact was loaded.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}
