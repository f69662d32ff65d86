// ABOUTME: Command-line benchmark runner for synthetic degradation scenarios
// ABOUTME: Executes the scenario suite and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/harper/vectorguard/benchmarks/synthetic"
)

func main() {
	// Command-line flags
	scenarioName := flag.String("scenario", "", "Run specific scenario (e.g. all_zeros). If empty, runs all scenarios.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	dimension := flag.Int("dimension", 1536, "Vector dimension")
	count := flag.Int("count", 1000, "Vectors generated per scenario")
	seed := flag.Uint64("seed", 42, "Random seed for vector generation")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Print header
	fmt.Println("========================================")
	fmt.Println("VectorGuard Synthetic Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner := synthetic.NewBenchmarkRunner(*dimension, *count, *seed, *verbose)

	var results []synthetic.ScenarioResult

	if *scenarioName == "" {
		fmt.Println("Running all scenarios...")
		fmt.Println()
		results = runner.RunAll()
	} else {
		var found bool
		for _, scenario := range synthetic.Scenarios() {
			if scenario.Name == *scenarioName {
				results = append(results, runner.RunScenario(scenario))
				found = true
				break
			}
		}
		if !found {
			log.Fatalf("Unknown scenario: %s", *scenarioName)
		}
	}

	// Print summary
	fmt.Println()
	fmt.Println("Results:")
	for _, result := range results {
		status := "PASS"
		if result.Accuracy < 1.0 {
			status = "MISS"
		}
		fmt.Printf("  [%s] %-22s accuracy=%.3f  %.0f vectors/s\n",
			status, result.Scenario, result.Accuracy, result.VectorsPerS)
	}
	fmt.Println()

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}
	fmt.Printf("Results written to %s\n", *outputPath)
}
