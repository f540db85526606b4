// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/stepsync/stepsync/internal/domain/scoring"
)

const validationHelp = "Please ensure all fields are numbers and workout_frequency is between 0 and 7. " +
	"Field names can be: age/Age, bmi/BMI/Calc_BMI, workout_frequency/Workout_Frequency"

// fieldAliases maps each canonical request field to the spellings accepted
// in the request body, mirroring the alias handling of the original API.
var fieldAliases = map[string][]string{ //nolint:gochecknoglobals // fixed request schema
	"age":               {"age", "Age"},
	"bmi":               {"bmi", "BMI", "Calc_BMI"},
	"workout_frequency": {"workout_frequency", "Workout_Frequency", "workoutFrequency"},
}

// PredictHandler handles prediction requests.
type PredictHandler struct {
	deps         Dependencies
	debugInfo    bool
	maxBodyBytes int64
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps Dependencies, debugInfo bool, maxBodyBytes int64) *PredictHandler {
	return &PredictHandler{
		deps:         deps,
		debugInfo:    debugInfo,
		maxBodyBytes: maxBodyBytes,
	}
}

// HandlePredict handles POST /predict requests.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	m, details := parsePredictRequest(body)
	if len(details) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
			Status:  "error",
			Code:    http.StatusUnprocessableEntity,
			Message: "Validation error",
			Details: details,
			Help:    validationHelp,
		})
		return
	}

	result, err := h.deps.Predict(r.Context(), m)
	if err != nil {
		if isRangeError(err) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	resp := predictionResponse{
		DifficultyLevel: string(result.Tier),
		ConfidenceScore: round3(result.Confidence),
		Recommendation:  result.Recommendation,
		HealthScore:     round3(result.HealthScore),
	}
	if h.debugInfo {
		resp.DebugInfo = &debugInfo{
			InputData: map[string]float64{
				"age":              m.Age,
				"bmi":              m.BMI,
				"workoutFrequency": m.WorkoutFrequency,
			},
			HealthScore: round3(result.HealthScore),
			Thresholds:  h.deps.ModelInfo(r.Context()).Thresholds,
			ScoreComponents: scoring.Components{
				Age:     round3(result.Components.Age),
				BMI:     round3(result.Components.BMI),
				Workout: round3(result.Components.Workout),
			},
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// parsePredictRequest decodes the request body accepting the alias field
// spellings and rejecting unknown fields. It returns the parsed metrics or
// a list of human-readable validation details.
func parsePredictRequest(body io.Reader) (scoring.Metrics, []string) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return scoring.Metrics{}, []string{"request body must be a JSON object"}
	}

	known := make(map[string]string, 8)
	for canonical, aliases := range fieldAliases {
		for _, alias := range aliases {
			known[alias] = canonical
		}
	}

	values := make(map[string]float64, 3)
	seen := make(map[string]bool, 3)
	var details []string
	for key, rawVal := range raw {
		canonical, ok := known[key]
		if !ok {
			details = append(details, fmt.Sprintf("unexpected field: %s", key))
			continue
		}
		if seen[canonical] {
			details = append(details, fmt.Sprintf("duplicate value for field: %s", canonical))
			continue
		}
		seen[canonical] = true
		var v float64
		if err := json.Unmarshal(rawVal, &v); err != nil {
			details = append(details, fmt.Sprintf("%s must be a number", canonical))
			continue
		}
		values[canonical] = v
	}

	for _, canonical := range []string{"age", "bmi", "workout_frequency"} {
		if !seen[canonical] {
			details = append(details, fmt.Sprintf("Missing required field: %s", canonical))
		}
	}

	if len(details) > 0 {
		// Deterministic ordering keeps the payload stable for clients and tests.
		sort.Strings(details)
		return scoring.Metrics{}, details
	}

	return scoring.Metrics{
		Age:              values["age"],
		BMI:              values["bmi"],
		WorkoutFrequency: values["workout_frequency"],
	}, nil
}

// isRangeError reports whether err is a strict input range rejection.
func isRangeError(err error) bool {
	return errors.Is(err, scoring.ErrAgeOutOfRange) ||
		errors.Is(err, scoring.ErrBMIOutOfRange) ||
		errors.Is(err, scoring.ErrWorkoutFrequencyOutOfRange)
}
