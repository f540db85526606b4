package main

import (
	"context"
	"os"
	"testing"

	app "github.com/stepsync/stepsync/internal/app"
	"github.com/stepsync/stepsync/internal/config"
	"github.com/stepsync/stepsync/pkg/logger"

	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STEPSYNC_ADDR", ":8080")
			_ = os.Setenv("STEPSYNC_MODEL_PATH", "model.yaml")
			defer func() {
				_ = os.Unsetenv("STEPSYNC_ADDR")
				_ = os.Unsetenv("STEPSYNC_MODEL_PATH")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ModelPath, convey.ShouldEqual, "model.yaml")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.So(logger.Init(), convey.ShouldBeNil)

			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithModelPath("custom_model.yaml"),
					app.WithStrictValidation(false),
					app.WithLogger(logger.Get()),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing system metrics updates", func() {
			convey.Convey("Then the updater should not panic", func() {
				convey.So(func() { updateSystemMetrics() }, convey.ShouldNotPanic)
			})
		})
	})
}
