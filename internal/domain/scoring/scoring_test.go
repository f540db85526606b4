package scoring_test

import (
	"errors"
	"testing"

	"github.com/stepsync/stepsync/internal/domain/scoring"
	"github.com/stepsync/stepsync/internal/domain/types"

	. "github.com/smartystreets/goconvey/convey"
)

var defaultThresholds = types.Thresholds{Easy: 0.57, Medium: 0.73}

func TestEngine_Score(t *testing.T) {
	Convey("Given an engine with the production thresholds", t, func() {
		engine := scoring.NewEngine(defaultThresholds)

		Convey("When scoring an ideal profile", func() {
			score, c := engine.Score(scoring.Metrics{Age: 25, BMI: 22, WorkoutFrequency: 4})

			Convey("Then the sub-scores should match the formula", func() {
				So(c.Age, ShouldEqual, 1.0)
				So(c.BMI, ShouldEqual, 1.0)
				So(c.Workout, ShouldAlmostEqual, 0.8, 1e-9)
				So(score, ShouldAlmostEqual, 0.9333, 1e-4)
			})
		})

		Convey("When scoring a middle-aged, lightly active profile", func() {
			score, c := engine.Score(scoring.Metrics{Age: 45, BMI: 28, WorkoutFrequency: 1})

			Convey("Then the sub-scores should fall off linearly", func() {
				So(c.Age, ShouldAlmostEqual, 0.2, 1e-9)
				So(c.BMI, ShouldAlmostEqual, 0.7667, 1e-4)
				So(c.Workout, ShouldAlmostEqual, 0.2, 1e-9)
				So(score, ShouldAlmostEqual, 0.389, 1e-3)
			})
		})

		Convey("When scoring a moderately fit profile", func() {
			score, c := engine.Score(scoring.Metrics{Age: 35, BMI: 25, WorkoutFrequency: 2})

			Convey("Then the score should land mid-range", func() {
				So(c.Age, ShouldAlmostEqual, 0.6, 1e-9)
				So(c.BMI, ShouldAlmostEqual, 0.9667, 1e-4)
				So(c.Workout, ShouldAlmostEqual, 0.4, 1e-9)
				So(score, ShouldAlmostEqual, 0.656, 1e-3)
			})
		})

		Convey("When checking the BMI healthy-range boundaries", func() {
			Convey("Then both edges score 1.0 and just past the edge does not", func() {
				_, low := engine.Score(scoring.Metrics{Age: 25, BMI: 18.5, WorkoutFrequency: 5})
				_, high := engine.Score(scoring.Metrics{Age: 25, BMI: 24.5, WorkoutFrequency: 5})
				_, past := engine.Score(scoring.Metrics{Age: 25, BMI: 24.6, WorkoutFrequency: 5})
				So(low.BMI, ShouldEqual, 1.0)
				So(high.BMI, ShouldEqual, 1.0)
				So(past.BMI, ShouldBeLessThan, 1.0)
			})
		})

		Convey("When sweeping the validated input domain", func() {
			Convey("Then every health score should stay within [0,1]", func() {
				for age := 18.0; age <= 80; age += 2 {
					for bmi := 15.0; bmi <= 40; bmi += 2.5 {
						for freq := 0.0; freq <= 7; freq++ {
							score, _ := engine.Score(scoring.Metrics{Age: age, BMI: bmi, WorkoutFrequency: freq})
							So(score, ShouldBeGreaterThanOrEqualTo, 0)
							So(score, ShouldBeLessThanOrEqualTo, 1)
						}
					}
				}
			})
		})

		Convey("When increasing workout frequency with age and bmi fixed", func() {
			Convey("Then the health score should never decrease up to the plateau", func() {
				prev := -1.0
				for freq := 0.0; freq <= 5; freq += 0.5 {
					score, c := engine.Score(scoring.Metrics{Age: 40, BMI: 27, WorkoutFrequency: freq})
					So(score, ShouldBeGreaterThanOrEqualTo, prev)
					So(c.Workout, ShouldBeGreaterThanOrEqualTo, 0)
					prev = score
				}
			})

			Convey("And the workout sub-score should plateau past 5 sessions", func() {
				_, atFive := engine.Score(scoring.Metrics{Age: 40, BMI: 27, WorkoutFrequency: 5})
				_, atSeven := engine.Score(scoring.Metrics{Age: 40, BMI: 27, WorkoutFrequency: 7})
				So(atFive.Workout, ShouldEqual, 1.0)
				So(atSeven.Workout, ShouldEqual, 1.0)
			})
		})

		Convey("When scoring extreme ages", func() {
			Convey("Then the age sub-score should floor at zero instead of going negative", func() {
				_, c := engine.Score(scoring.Metrics{Age: 80, BMI: 22, WorkoutFrequency: 3})
				So(c.Age, ShouldEqual, 0)
			})
		})
	})
}

func TestEngine_Classify(t *testing.T) {
	Convey("Given an engine with the production thresholds", t, func() {
		engine := scoring.NewEngine(defaultThresholds)

		Convey("When classifying the concrete scenario scores", func() {
			Convey("Then 0.9333 should be Hard", func() {
				r := engine.Evaluate(scoring.Metrics{Age: 25, BMI: 22, WorkoutFrequency: 4})
				So(r.Tier, ShouldEqual, types.TierHard)
				So(r.Recommendation, ShouldContainSubstring, "high-intensity")
			})

			Convey("Then 0.389 should be Easy", func() {
				r := engine.Evaluate(scoring.Metrics{Age: 45, BMI: 28, WorkoutFrequency: 1})
				So(r.Tier, ShouldEqual, types.TierEasy)
				So(r.Recommendation, ShouldContainSubstring, "light exercises")
			})

			Convey("Then 0.656 should be Medium", func() {
				r := engine.Evaluate(scoring.Metrics{Age: 35, BMI: 25, WorkoutFrequency: 2})
				So(r.Tier, ShouldEqual, types.TierMedium)
				So(r.Recommendation, ShouldContainSubstring, "moderate intensity")
			})
		})

		Convey("When classifying exactly on the thresholds", func() {
			Convey("Then the boundary belongs to the lower tier", func() {
				So(engine.Classify(0.57).Tier, ShouldEqual, types.TierEasy)
				So(engine.Classify(0.73).Tier, ShouldEqual, types.TierMedium)
				So(engine.Classify(0.7300001).Tier, ShouldEqual, types.TierHard)
			})
		})

		Convey("When sweeping all scores in [0,1]", func() {
			Convey("Then every score maps to exactly one tier with confidence in [0,1]", func() {
				for s := 0.0; s <= 1.0; s += 0.001 {
					r := engine.Classify(s)
					So(r.Tier, ShouldBeIn, []types.Tier{types.TierEasy, types.TierMedium, types.TierHard})
					So(r.Confidence, ShouldBeGreaterThanOrEqualTo, 0)
					So(r.Confidence, ShouldBeLessThanOrEqualTo, 1)
					So(r.Recommendation, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When confidence is evaluated near tier centers and boundaries", func() {
			Convey("Then a score at the Medium midpoint has full confidence", func() {
				r := engine.Classify(0.65)
				So(r.Tier, ShouldEqual, types.TierMedium)
				So(r.Confidence, ShouldAlmostEqual, 1.0, 1e-9)
			})

			Convey("And a score of zero is a fully confident Easy", func() {
				r := engine.Classify(0)
				So(r.Tier, ShouldEqual, types.TierEasy)
				So(r.Confidence, ShouldEqual, 1.0)
			})

			Convey("And a score of one is a fully confident Hard", func() {
				r := engine.Classify(1)
				So(r.Tier, ShouldEqual, types.TierHard)
				So(r.Confidence, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})
	})

	Convey("Given engines with degenerate thresholds", t, func() {
		Convey("When the easy threshold is zero", func() {
			engine := scoring.NewEngine(types.Thresholds{Easy: 0, Medium: 0.5})

			Convey("Then an Easy score reports zero confidence instead of dividing by zero", func() {
				r := engine.Classify(0)
				So(r.Tier, ShouldEqual, types.TierEasy)
				So(r.Confidence, ShouldEqual, 0)
			})
		})

		Convey("When the threshold band has zero width", func() {
			engine := scoring.NewEngine(types.Thresholds{Easy: 0.5, Medium: 0.5})

			Convey("Then every score still maps to a tier with clamped confidence", func() {
				for _, s := range []float64{0, 0.25, 0.5, 0.75, 1} {
					r := engine.Classify(s)
					So(r.Tier, ShouldBeIn, []types.Tier{types.TierEasy, types.TierMedium, types.TierHard})
					So(r.Confidence, ShouldBeGreaterThanOrEqualTo, 0)
					So(r.Confidence, ShouldBeLessThanOrEqualTo, 1)
				}
			})
		})

		Convey("When the medium threshold is one", func() {
			engine := scoring.NewEngine(types.Thresholds{Easy: 0.5, Medium: 1})

			Convey("Then no Hard tier is reachable and scores above easy are Medium", func() {
				r := engine.Classify(1)
				So(r.Tier, ShouldEqual, types.TierMedium)
				So(r.Confidence, ShouldBeGreaterThanOrEqualTo, 0)
				So(r.Confidence, ShouldBeLessThanOrEqualTo, 1)
			})
		})
	})
}

func TestEngine_Options(t *testing.T) {
	Convey("Given an engine with a custom recommendation", t, func() {
		engine := scoring.NewEngine(defaultThresholds,
			scoring.WithRecommendation(types.TierEasy, "Take a walk."),
		)

		Convey("Then the override should replace the canned text for that tier only", func() {
			So(engine.Classify(0.1).Recommendation, ShouldEqual, "Take a walk.")
			So(engine.Classify(0.65).Recommendation, ShouldContainSubstring, "moderate intensity")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the strict input ranges", t, func() {
		Convey("When metrics are in range", func() {
			err := scoring.Validate(scoring.Metrics{Age: 30, BMI: 22, WorkoutFrequency: 3})
			So(err, ShouldBeNil)
		})

		Convey("When metrics sit exactly on the bounds", func() {
			So(scoring.Validate(scoring.Metrics{Age: 18, BMI: 15, WorkoutFrequency: 0}), ShouldBeNil)
			So(scoring.Validate(scoring.Metrics{Age: 80, BMI: 40, WorkoutFrequency: 7}), ShouldBeNil)
		})

		Convey("When age is out of range", func() {
			err := scoring.Validate(scoring.Metrics{Age: 17, BMI: 22, WorkoutFrequency: 3})
			So(errors.Is(err, scoring.ErrAgeOutOfRange), ShouldBeTrue)
		})

		Convey("When bmi is out of range", func() {
			err := scoring.Validate(scoring.Metrics{Age: 30, BMI: 41, WorkoutFrequency: 3})
			So(errors.Is(err, scoring.ErrBMIOutOfRange), ShouldBeTrue)
		})

		Convey("When workout frequency is out of range", func() {
			err := scoring.Validate(scoring.Metrics{Age: 30, BMI: 22, WorkoutFrequency: 8})
			So(errors.Is(err, scoring.ErrWorkoutFrequencyOutOfRange), ShouldBeTrue)
		})
	})
}
