package config_test

import (
	"context"
	"testing"

	"github.com/stepsync/stepsync/internal/config"

	"github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then sensible defaults should be set", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.ModelPath, convey.ShouldEqual, "difficulty_model.yaml")
			convey.So(cfg.StrictValidation, convey.ShouldBeTrue)
			convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"*"})
			convey.So(cfg.MaxBodyBytes, convey.ShouldBeGreaterThan, 0)
		})
	})
}
