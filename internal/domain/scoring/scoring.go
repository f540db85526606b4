// Package scoring computes health scores from user metrics and classifies
// them into workout difficulty tiers.
//
// The scoring law is the clamped linear formula: each sub-score falls off
// linearly from its healthy peak and is floored at zero. A smoother
// reciprocal-curve variant of the same formula exists in the wild; this
// package deliberately implements only the clamped one, since it is the
// variant paired with strict input-range validation.
package scoring

import (
	"math"

	"github.com/stepsync/stepsync/internal/domain/types"
)

// Scoring formula constants.
const (
	peakAge        = 25.0 // age with the best sub-score
	ageFalloff     = 25.0 // years from peak to a zero sub-score
	healthyBMILow  = 18.5
	healthyBMIHigh = 24.5
	bmiLowFalloff  = 10.0 // BMI units below the healthy range to a zero sub-score
	bmiHighFalloff = 15.0 // BMI units above the healthy range to a zero sub-score
	workoutPlateau = 5.0  // sessions/week at which the sub-score saturates
)

// Strict validation bounds.
const (
	minAge            = 18.0
	maxAge            = 80.0
	minBMI            = 15.0
	maxBMI            = 40.0
	minWorkoutPerWeek = 0.0
	maxWorkoutPerWeek = 7.0
)

// Recommendation texts per tier.
const (
	easyRecommendation   = "Start with light exercises and gradually increase intensity. Focus on building endurance and proper form."
	mediumRecommendation = "You can handle moderate intensity workouts. Mix cardio and strength training with progressive overload."
	hardRecommendation   = "You're ready for high-intensity workouts. Challenge yourself with complex exercises and advanced training techniques."
)

// Metrics are the numeric inputs to a prediction, already coerced to float64.
type Metrics struct {
	Age              float64
	BMI              float64
	WorkoutFrequency float64
}

// Components breaks a health score down into its three sub-scores.
type Components struct {
	Age     float64 `json:"ageScore"`
	BMI     float64 `json:"bmiScore"`
	Workout float64 `json:"workoutScore"`
}

// Result is a full classification of one set of metrics.
type Result struct {
	Tier           types.Tier
	Confidence     float64
	Recommendation string
	HealthScore    float64
	Components     Components
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRecommendation overrides the canned recommendation text for a tier.
func WithRecommendation(tier types.Tier, text string) Option {
	return func(e *Engine) {
		if text != "" {
			e.recommendations[tier] = text
		}
	}
}

// Engine classifies health scores against a fixed pair of thresholds.
// It is stateless apart from the immutable thresholds and is safe for
// concurrent use.
type Engine struct {
	thresholds      types.Thresholds
	recommendations map[types.Tier]string
}

// NewEngine creates an Engine bound to the given thresholds.
func NewEngine(thresholds types.Thresholds, opts ...Option) *Engine {
	e := &Engine{
		thresholds: thresholds,
		recommendations: map[types.Tier]string{
			types.TierEasy:   easyRecommendation,
			types.TierMedium: mediumRecommendation,
			types.TierHard:   hardRecommendation,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Thresholds returns the thresholds the engine was built with.
func (e *Engine) Thresholds() types.Thresholds {
	return e.thresholds
}

// Score computes the composite health score in [0,1] together with its
// sub-scores. It is total on any float inputs: every sub-score self-guards
// via clamping, so out-of-range metrics degrade to zero contributions
// rather than escaping the score domain.
func (e *Engine) Score(m Metrics) (float64, Components) {
	c := Components{
		Age:     ageScore(m.Age),
		BMI:     bmiScore(m.BMI),
		Workout: workoutScore(m.WorkoutFrequency),
	}
	return (c.Age + c.BMI + c.Workout) / 3.0, c
}

// Classify maps a health score to a difficulty tier, confidence value, and
// recommendation. Thresholds are inclusive boundaries for the lower tier.
func (e *Engine) Classify(healthScore float64) Result {
	easy, medium := e.thresholds.Easy, e.thresholds.Medium

	var tier types.Tier
	var confidence float64
	switch {
	case healthScore <= easy:
		tier = types.TierEasy
		// Degenerate easy=0 pins every Easy score to the boundary; report no confidence.
		if easy == 0 {
			confidence = 0
		} else {
			confidence = 1 - healthScore/easy
		}
	case healthScore <= medium:
		tier = types.TierMedium
		if band := medium - easy; band == 0 {
			confidence = 0
		} else {
			midpoint := (easy + medium) / 2
			confidence = 1 - math.Abs(healthScore-midpoint)/band
		}
	default:
		tier = types.TierHard
		if medium == 1 {
			confidence = 0
		} else {
			confidence = (healthScore - medium) / (1 - medium)
		}
	}

	return Result{
		Tier:           tier,
		Confidence:     clamp01(confidence),
		Recommendation: e.recommendations[tier],
		HealthScore:    healthScore,
	}
}

// Evaluate scores and classifies in one call.
func (e *Engine) Evaluate(m Metrics) Result {
	score, components := e.Score(m)
	r := e.Classify(score)
	r.Components = components
	return r
}

// Validate applies the strict input ranges: age [18,80], bmi [15,40],
// workout frequency [0,7]. Callers running the permissive variant skip it.
func Validate(m Metrics) error {
	switch {
	case m.Age < minAge || m.Age > maxAge:
		return ErrAgeOutOfRange
	case m.BMI < minBMI || m.BMI > maxBMI:
		return ErrBMIOutOfRange
	case m.WorkoutFrequency < minWorkoutPerWeek || m.WorkoutFrequency > maxWorkoutPerWeek:
		return ErrWorkoutFrequencyOutOfRange
	}
	return nil
}

// ageScore peaks at 25 and falls off linearly, reaching zero at 0 and 50.
func ageScore(age float64) float64 {
	return math.Max(0, 1-math.Abs(age-peakAge)/ageFalloff)
}

// bmiScore is 1.0 inside the healthy range and falls off linearly outside
// it, with a gentler slope above the range than below it.
func bmiScore(bmi float64) float64 {
	switch {
	case bmi >= healthyBMILow && bmi <= healthyBMIHigh:
		return 1.0
	case bmi < healthyBMILow:
		return math.Max(0, 1-(healthyBMILow-bmi)/bmiLowFalloff)
	default:
		return math.Max(0, 1-(bmi-healthyBMIHigh)/bmiHighFalloff)
	}
}

// workoutScore grows linearly up to 5 sessions/week and plateaus at 1.0.
func workoutScore(freq float64) float64 {
	return math.Max(0, math.Min(freq/workoutPlateau, 1.0))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
