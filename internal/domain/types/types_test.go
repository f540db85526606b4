package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stepsync/stepsync/internal/domain/types"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModelInfoJSONContract(t *testing.T) {
	Convey("Given a populated ModelInfo", t, func() {
		info := types.ModelInfo{
			ModelType:    "Health Score Model",
			FeatureNames: []string{"age", "bmi", "workout_frequency"},
			Thresholds:   types.Thresholds{Easy: 0.57, Medium: 0.73},
			Stats:        types.Stats{Mean: 0.62, Std: 0.15, Min: 0.08, Max: 0.97},
		}

		Convey("When marshalling it", func() {
			body, err := json.Marshal(info)

			Convey("Then the snake_case keys clients depend on should be present", func() {
				So(err, ShouldBeNil)
				So(string(body), ShouldContainSubstring, `"model_type"`)
				So(string(body), ShouldContainSubstring, `"feature_names"`)
				So(string(body), ShouldContainSubstring, `"easy_threshold":0.57`)
				So(string(body), ShouldContainSubstring, `"medium_threshold":0.73`)
				So(string(body), ShouldContainSubstring, `"health_score_stats"`)
			})
		})
	})
}

func TestTiers(t *testing.T) {
	Convey("Given the difficulty tiers", t, func() {
		Convey("Then they should carry their wire values", func() {
			So(string(types.TierEasy), ShouldEqual, "Easy")
			So(string(types.TierMedium), ShouldEqual, "Medium")
			So(string(types.TierHard), ShouldEqual, "Hard")
		})
	})
}
