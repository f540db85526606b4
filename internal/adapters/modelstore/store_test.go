package modelstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stepsync/stepsync/internal/adapters/modelstore"

	. "github.com/smartystreets/goconvey/convey"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "difficulty_model.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write artifact fixture: %v", err)
	}
	return path
}

const validArtifact = `easy_threshold: 0.57
medium_threshold: 0.73
health_score_stats:
  mean: 0.62
  std: 0.15
  min: 0.08
  max: 0.97
`

func TestLoad(t *testing.T) {
	Convey("Given a valid model artifact on disk", t, func() {
		path := writeArtifact(t, validArtifact)

		Convey("When loading it", func() {
			store, err := modelstore.Load(context.Background(), path)

			Convey("Then thresholds and stats should be exposed read-only", func() {
				So(err, ShouldBeNil)
				So(store, ShouldNotBeNil)
				So(store.Thresholds().Easy, ShouldEqual, 0.57)
				So(store.Thresholds().Medium, ShouldEqual, 0.73)
				So(store.Stats().Mean, ShouldEqual, 0.62)
				So(store.Stats().Std, ShouldEqual, 0.15)
				So(store.Stats().Min, ShouldEqual, 0.08)
				So(store.Stats().Max, ShouldEqual, 0.97)
				So(store.Path(), ShouldEqual, path)
				So(store.LoadedAt().IsZero(), ShouldBeFalse)
			})
		})
	})

	Convey("Given a missing artifact file", t, func() {
		path := filepath.Join(t.TempDir(), "nope.yaml")

		Convey("When loading it", func() {
			store, err := modelstore.Load(context.Background(), path)

			Convey("Then the load should fail with a not-found kind", func() {
				So(store, ShouldBeNil)
				So(errors.Is(err, modelstore.ErrArtifactNotFound), ShouldBeTrue)
			})
		})
	})

	Convey("Given artifacts missing required components", t, func() {
		cases := map[string]string{
			"easy_threshold":     "medium_threshold: 0.73\nhealth_score_stats:\n  mean: 0.5\n",
			"medium_threshold":   "easy_threshold: 0.57\nhealth_score_stats:\n  mean: 0.5\n",
			"health_score_stats": "easy_threshold: 0.57\nmedium_threshold: 0.73\n",
		}

		for missing, body := range cases {
			Convey("When loading an artifact without "+missing, func() {
				path := writeArtifact(t, body)
				store, err := modelstore.Load(context.Background(), path)

				Convey("Then the load should fail naming the missing component", func() {
					So(store, ShouldBeNil)
					So(errors.Is(err, modelstore.ErrMissingComponent), ShouldBeTrue)
					So(err.Error(), ShouldContainSubstring, missing)
				})
			})
		}
	})

	Convey("Given an artifact with out-of-order thresholds", t, func() {
		path := writeArtifact(t, "easy_threshold: 0.8\nmedium_threshold: 0.4\nhealth_score_stats:\n  mean: 0.5\n")

		Convey("When loading it", func() {
			store, err := modelstore.Load(context.Background(), path)

			Convey("Then the load should fail with the ordering kind", func() {
				So(store, ShouldBeNil)
				So(errors.Is(err, modelstore.ErrInvalidThresholds), ShouldBeTrue)
			})
		})
	})

	Convey("Given an artifact that is not valid YAML", t, func() {
		path := writeArtifact(t, "easy_threshold: [unclosed\n")

		Convey("When loading it", func() {
			store, err := modelstore.Load(context.Background(), path)

			Convey("Then the load should fail", func() {
				So(store, ShouldBeNil)
				So(err, ShouldNotBeNil)
			})
		})
	})
}
