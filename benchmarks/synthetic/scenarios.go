// ABOUTME: Synthetic degradation scenarios for exercising the validator
// ABOUTME: Generates clean and corrupted vectors with known expected verdicts
package synthetic

import (
	"math"
	"math/rand/v2"

	"github.com/harper/vectorguard/internal/models"
)

// Scenario describes one synthetic vector population and the verdict the
// validator is expected to produce for it
type Scenario struct {
	Name        string
	Description string
	Expect      models.IssueType
	Generate    func(rng *rand.Rand, dim int) []float64
}

// Scenarios returns the full suite, one entry per issue type plus a clean
// baseline
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "clean",
			Description: "well-formed gaussian-like vectors",
			Expect:      models.IssueValid,
			Generate:    cleanVector,
		},
		{
			Name:        "all_zeros",
			Description: "every component exactly zero",
			Expect:      models.IssueAllZeros,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				return make([]float64, dim)
			},
		},
		{
			Name:        "mostly_zeros",
			Description: "97% of components zero",
			Expect:      models.IssueMostlyZeros,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				v := make([]float64, dim)
				keep := dim * 3 / 100
				for i := 0; i < keep; i++ {
					v[rng.IntN(dim)] = rng.Float64() - 0.5
				}
				return v
			},
		},
		{
			Name:        "truncated",
			Description: "vectors one component short",
			Expect:      models.IssueInvalidDimensions,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				return cleanVector(rng, dim-1)
			},
		},
		{
			Name:        "nan_injection",
			Description: "clean vectors with one NaN component",
			Expect:      models.IssueNaNValues,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				v := cleanVector(rng, dim)
				v[rng.IntN(dim)] = math.NaN()
				return v
			},
		},
		{
			Name:        "inf_injection",
			Description: "clean vectors with one infinite component",
			Expect:      models.IssueInfiniteValues,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				v := cleanVector(rng, dim)
				v[rng.IntN(dim)] = math.Inf(1)
				return v
			},
		},
		{
			Name:        "extreme_values",
			Description: "clean vectors with one component far out of range",
			Expect:      models.IssueExtremeValues,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				v := cleanVector(rng, dim)
				v[rng.IntN(dim)] = 50.0 + rng.Float64()*50.0
				return v
			},
		},
		{
			Name:        "constant",
			Description: "every component the same nonzero value",
			Expect:      models.IssueInsufficientVariance,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				v := make([]float64, dim)
				c := 0.25 + rng.Float64()*0.5
				for i := range v {
					v[i] = c
				}
				return v
			},
		},
		{
			Name:        "repetitive",
			Description: "only a handful of distinct values, alternating",
			Expect:      models.IssueSuspiciousPattern,
			Generate: func(rng *rand.Rand, dim int) []float64 {
				values := []float64{0.1, 0.2, 0.3, 0.4}
				v := make([]float64, dim)
				for i := range v {
					v[i] = values[i%len(values)]
				}
				return v
			},
		},
	}
}

// cleanVector produces a vector that passes every check: distinct small
// values with plenty of variance and no zeros
func cleanVector(rng *rand.Rand, dim int) []float64 {
	v := make([]float64, dim)
	for i := range v {
		v[i] = (rng.Float64() - 0.5) * 2.0
	}
	return v
}
