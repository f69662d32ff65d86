// ABOUTME: Benchmark runner for synthetic degradation scenarios
// ABOUTME: Measures validator accuracy and throughput per scenario, exports JSON

package synthetic

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/harper/vectorguard/internal/models"
	"github.com/harper/vectorguard/internal/validator"
)

// ScenarioResult holds the measured outcome of one scenario run
type ScenarioResult struct {
	Scenario    string           `json:"scenario"`
	Expected    models.IssueType `json:"expected"`
	Vectors     int              `json:"vectors"`
	Correct     int              `json:"correct"`
	Accuracy    float64          `json:"accuracy"`
	Misses      map[string]int   `json:"misses,omitempty"`
	DurationMS  float64          `json:"duration_ms"`
	VectorsPerS float64          `json:"vectors_per_second"`
}

// BenchmarkRunner executes synthetic scenarios against a validator
type BenchmarkRunner struct {
	validator *validator.Validator
	dimension int
	count     int
	rng       *rand.Rand
	verbose   bool
}

// NewBenchmarkRunner creates a runner generating count vectors of the given
// dimension per scenario. Seed fixes the generator so runs are reproducible.
func NewBenchmarkRunner(dimension, count int, seed uint64, verbose bool) *BenchmarkRunner {
	opts := validator.DefaultOptions()
	opts.ExpectedDimension = dimension

	return &BenchmarkRunner{
		validator: validator.NewValidator(opts),
		dimension: dimension,
		count:     count,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		verbose:   verbose,
	}
}

// RunScenario generates vectors for one scenario and validates them all
func (r *BenchmarkRunner) RunScenario(scenario Scenario) ScenarioResult {
	if r.verbose {
		fmt.Printf("Running scenario: %s (%s)\n", scenario.Name, scenario.Description)
	}

	result := ScenarioResult{
		Scenario: scenario.Name,
		Expected: scenario.Expect,
		Vectors:  r.count,
		Misses:   make(map[string]int),
	}

	start := time.Now()
	for i := 0; i < r.count; i++ {
		vector := scenario.Generate(r.rng, r.dimension)
		verdict := r.validator.Validate(vector, nil)
		if verdict.IssueType == scenario.Expect {
			result.Correct++
		} else {
			result.Misses[string(verdict.IssueType)]++
		}
	}
	elapsed := time.Since(start)

	result.Accuracy = float64(result.Correct) / float64(r.count)
	result.DurationMS = float64(elapsed.Microseconds()) / 1000.0
	if elapsed > 0 {
		result.VectorsPerS = float64(r.count) / elapsed.Seconds()
	}
	if len(result.Misses) == 0 {
		result.Misses = nil
	}

	if r.verbose {
		fmt.Printf("  accuracy %.3f, %.0f vectors/s\n", result.Accuracy, result.VectorsPerS)
	}
	return result
}

// RunAll executes every scenario in the suite
func (r *BenchmarkRunner) RunAll() []ScenarioResult {
	scenarios := Scenarios()
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		results = append(results, r.RunScenario(scenario))
	}
	return results
}

// ExportResults writes results as indented JSON to outputPath
func (r *BenchmarkRunner) ExportResults(results []ScenarioResult, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"dimension":    r.dimension,
		"vectors":      r.count,
		"results":      results,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
