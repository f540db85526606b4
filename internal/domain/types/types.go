// Package types contains common types used across the application
package types

// Tier is the predicted workout difficulty level.
type Tier string

// Difficulty tiers, ordered from lowest to highest health score.
const (
	TierEasy   Tier = "Easy"
	TierMedium Tier = "Medium"
	TierHard   Tier = "Hard"
)

// Thresholds are the two score cut points separating the difficulty tiers.
// Invariant: 0 <= Easy <= Medium <= 1.
type Thresholds struct {
	Easy   float64 `json:"easy_threshold"`
	Medium float64 `json:"medium_threshold"`
}

// Stats describes the health score distribution the thresholds were derived from.
type Stats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// ModelInfo is the introspection payload served by /model-info.
type ModelInfo struct {
	ModelType    string     `json:"model_type"`
	FeatureNames []string   `json:"feature_names"`
	Thresholds   Thresholds `json:"thresholds"`
	Stats        Stats      `json:"health_score_stats"`
}
