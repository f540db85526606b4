// Command smoke exercises a running StepSync instance end to end: it checks
// the health and model-info endpoints, then submits a set of known profiles
// and verifies the predicted tiers.
//
//	go run ./cmd/smoke -url http://localhost:8000
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 10 * time.Second

type scenario struct {
	name     string
	body     map[string]float64
	wantTier string
}

// Known profiles with their expected tiers under the production thresholds.
var scenarios = []scenario{ //nolint:gochecknoglobals // fixed scenario table
	{
		name:     "young fit profile",
		body:     map[string]float64{"age": 25, "bmi": 22, "workout_frequency": 4},
		wantTier: "Hard",
	},
	{
		name:     "middle-aged lightly active profile",
		body:     map[string]float64{"age": 45, "bmi": 28, "workout_frequency": 1},
		wantTier: "Easy",
	},
	{
		name:     "moderately fit profile",
		body:     map[string]float64{"age": 35, "bmi": 25, "workout_frequency": 2},
		wantTier: "Medium",
	},
}

type predictResponse struct {
	DifficultyLevel string  `json:"difficultyLevel"`
	ConfidenceScore float64 `json:"confidenceScore"`
	HealthScore     float64 `json:"healthScore"`
	Recommendation  string  `json:"recommendation"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8000", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	ctx := context.Background()

	failures := 0
	if err := checkEndpoint(ctx, client, *baseURL+"/health"); err != nil {
		fmt.Println("FAIL health:", err)
		failures++
	} else {
		fmt.Println("ok   health")
	}
	if err := checkEndpoint(ctx, client, *baseURL+"/model-info"); err != nil {
		fmt.Println("FAIL model-info:", err)
		failures++
	} else {
		fmt.Println("ok   model-info")
	}

	for _, sc := range scenarios {
		if err := runScenario(ctx, client, *baseURL, sc); err != nil {
			fmt.Printf("FAIL %s: %v\n", sc.name, err)
			failures++
			continue
		}
		fmt.Printf("ok   %s\n", sc.name)
	}

	if failures > 0 {
		fmt.Printf("%d check(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all checks passed")
}

func checkEndpoint(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func runScenario(ctx context.Context, client *http.Client, baseURL string, sc scenario) error {
	payload, err := json.Marshal(sc.body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if pr.DifficultyLevel != sc.wantTier {
		return fmt.Errorf("tier %s, want %s (healthScore=%.3f)", pr.DifficultyLevel, sc.wantTier, pr.HealthScore)
	}
	if pr.ConfidenceScore < 0 || pr.ConfidenceScore > 1 {
		return fmt.Errorf("confidence %v out of [0,1]", pr.ConfidenceScore)
	}
	return nil
}
