// Command genmodel writes or verifies a StepSync model artifact.
//
// The artifact carries the two difficulty thresholds and the health score
// distribution statistics the service loads at startup:
//
//	go run ./cmd/genmodel -out difficulty_model.yaml -easy 0.57 -medium 0.73
//	go run ./cmd/genmodel -verify difficulty_model.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stepsync/stepsync/internal/adapters/modelstore"

	"gopkg.in/yaml.v3"
)

// Default artifact values, matching the production model.
const (
	defaultEasyThreshold   = 0.57
	defaultMediumThreshold = 0.73
	defaultMean            = 0.62
	defaultStd             = 0.15
	defaultMin             = 0.08
	defaultMax             = 0.97

	artifactFilePermission = 0o644
)

type artifactStats struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

type artifactFile struct {
	EasyThreshold   float64       `yaml:"easy_threshold"`
	MediumThreshold float64       `yaml:"medium_threshold"`
	Stats           artifactStats `yaml:"health_score_stats"`
}

func main() {
	var (
		out    = flag.String("out", "difficulty_model.yaml", "Output path for the model artifact")
		easy   = flag.Float64("easy", defaultEasyThreshold, "Easy/Medium threshold")
		medium = flag.Float64("medium", defaultMediumThreshold, "Medium/Hard threshold")
		mean   = flag.Float64("mean", defaultMean, "Health score mean")
		std    = flag.Float64("std", defaultStd, "Health score standard deviation")
		minVal = flag.Float64("min", defaultMin, "Health score minimum")
		maxVal = flag.Float64("max", defaultMax, "Health score maximum")
		verify = flag.String("verify", "", "Verify an existing artifact instead of writing one")
	)
	flag.Parse()

	if *verify != "" {
		if err := verifyArtifact(*verify); err != nil {
			fmt.Fprintln(os.Stderr, "verification failed:", err)
			os.Exit(1)
		}
		return
	}

	if *easy < 0 || *easy > *medium || *medium > 1 {
		fmt.Fprintf(os.Stderr, "thresholds must satisfy 0 <= easy <= medium <= 1, got easy=%v medium=%v\n", *easy, *medium)
		os.Exit(1)
	}

	a := artifactFile{
		EasyThreshold:   *easy,
		MediumThreshold: *medium,
		Stats: artifactStats{
			Mean: *mean,
			Std:  *std,
			Min:  *minVal,
			Max:  *maxVal,
		},
	}

	body, err := yaml.Marshal(a)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to marshal artifact:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, body, artifactFilePermission); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write artifact:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (easy=%v medium=%v)\n", *out, *easy, *medium)
}

// verifyArtifact loads the artifact through the same store the service
// uses, so a passing verification means the service will start.
func verifyArtifact(path string) error {
	store, err := modelstore.Load(context.Background(), path)
	if err != nil {
		return err
	}
	th := store.Thresholds()
	st := store.Stats()
	fmt.Printf("artifact ok: easy=%v medium=%v mean=%.3f std=%.3f min=%.3f max=%.3f\n",
		th.Easy, th.Medium, st.Mean, st.Std, st.Min, st.Max)
	return nil
}
