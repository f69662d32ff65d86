// ABOUTME: Stateless embedding quality validator with ordered numeric checks
// ABOUTME: Classifies vectors as valid or into one of eight degradation issues
package validator

import (
	"fmt"
	"math"

	"github.com/harper/vectorguard/internal/models"
)

// Default thresholds for the validation checks
const (
	DefaultExpectedDimension      = 1536
	DefaultZeroTolerance          = 1e-10
	DefaultMostlyZerosThreshold   = 0.95
	DefaultExtremeValueThreshold  = 10.0
	DefaultMinVarianceThreshold   = 1e-6
	DefaultMaxRepetitionThreshold = 0.8
)

// Options holds the immutable thresholds for a Validator
type Options struct {
	ExpectedDimension      int
	ZeroTolerance          float64
	MostlyZerosThreshold   float64
	ExtremeValueThreshold  float64
	MinVarianceThreshold   float64
	MaxRepetitionThreshold float64
}

// DefaultOptions returns the standard thresholds for OpenAI-style embeddings
func DefaultOptions() *Options {
	return &Options{
		ExpectedDimension:      DefaultExpectedDimension,
		ZeroTolerance:          DefaultZeroTolerance,
		MostlyZerosThreshold:   DefaultMostlyZerosThreshold,
		ExtremeValueThreshold:  DefaultExtremeValueThreshold,
		MinVarianceThreshold:   DefaultMinVarianceThreshold,
		MaxRepetitionThreshold: DefaultMaxRepetitionThreshold,
	}
}

// Validator classifies embedding vectors. It holds no mutable state and is
// safe for concurrent use.
type Validator struct {
	opts Options
}

// NewValidator creates a Validator. A nil opts uses DefaultOptions.
func NewValidator(opts *Options) *Validator {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Validator{opts: *opts}
}

// Options returns a copy of the validator's thresholds
func (v *Validator) Options() Options {
	return v.opts
}

// Validate classifies a single embedding vector. It never returns an error;
// every input maps to exactly one ValidationResult. Checks run in fixed
// priority order and the first match wins.
func (v *Validator) Validate(vector []float64, sourceInfo map[string]interface{}) models.ValidationResult {
	// A nil vector is indistinguishable from malformed input here. It shares
	// the invalid_dimensions classification with wrong-length vectors on
	// purpose; see DESIGN.md.
	if vector == nil {
		return v.result(models.IssueInvalidDimensions, models.SeverityCritical, 1.0,
			"embedding is nil or could not be interpreted as a numeric vector",
			map[string]interface{}{
				"expected_dimension": v.opts.ExpectedDimension,
				"actual_dimension":   0,
			}, sourceInfo)
	}

	if len(vector) != v.opts.ExpectedDimension {
		return v.result(models.IssueInvalidDimensions, models.SeverityCritical, 1.0,
			fmt.Sprintf("expected %d dimensions, got %d", v.opts.ExpectedDimension, len(vector)),
			map[string]interface{}{
				"expected_dimension": v.opts.ExpectedDimension,
				"actual_dimension":   len(vector),
			}, sourceInfo)
	}

	if n := countNaN(vector); n > 0 {
		return v.result(models.IssueNaNValues, models.SeverityCritical, 1.0,
			fmt.Sprintf("embedding contains %d NaN components", n),
			map[string]interface{}{"nan_count": n}, sourceInfo)
	}

	if n := countInf(vector); n > 0 {
		return v.result(models.IssueInfiniteValues, models.SeverityCritical, 1.0,
			fmt.Sprintf("embedding contains %d infinite components", n),
			map[string]interface{}{"infinite_count": n}, sourceInfo)
	}

	zeroFraction := zeroFraction(vector, v.opts.ZeroTolerance)
	if zeroFraction == 1.0 {
		return v.result(models.IssueAllZeros, models.SeverityCritical, 1.0,
			"every component is zero within tolerance",
			map[string]interface{}{"zero_fraction": zeroFraction}, sourceInfo)
	}
	if zeroFraction > v.opts.MostlyZerosThreshold {
		return v.result(models.IssueMostlyZeros, models.SeverityCritical, 0.9,
			fmt.Sprintf("%.1f%% of components are zero within tolerance", zeroFraction*100),
			map[string]interface{}{"zero_fraction": zeroFraction}, sourceInfo)
	}

	maxAbs := maxAbsValue(vector)
	if maxAbs > v.opts.ExtremeValueThreshold {
		return v.result(models.IssueExtremeValues, models.SeverityWarning, 0.7,
			fmt.Sprintf("max absolute value %.4f exceeds threshold %.4f", maxAbs, v.opts.ExtremeValueThreshold),
			map[string]interface{}{"max_abs_value": maxAbs}, sourceInfo)
	}

	variance := variance(vector)
	if variance < v.opts.MinVarianceThreshold {
		return v.result(models.IssueInsufficientVariance, models.SeverityWarning, 0.8,
			fmt.Sprintf("variance %.3e is below threshold %.3e", variance, v.opts.MinVarianceThreshold),
			map[string]interface{}{"variance": variance}, sourceInfo)
	}

	uniqueCount := countUnique(vector)
	repetition := 1.0 - float64(uniqueCount)/float64(len(vector))
	if repetition > v.opts.MaxRepetitionThreshold {
		return v.result(models.IssueSuspiciousPattern, models.SeverityWarning, 0.6,
			fmt.Sprintf("only %d unique values across %d components", uniqueCount, len(vector)),
			map[string]interface{}{
				"repetition_fraction": repetition,
				"unique_values":       uniqueCount,
			}, sourceInfo)
	}

	return v.result(models.IssueValid, models.SeverityInfo, 1.0,
		"embedding passed all quality checks",
		map[string]interface{}{
			"dimension":     len(vector),
			"zero_fraction": zeroFraction,
			"max_abs_value": maxAbs,
			"variance":      variance,
		}, sourceInfo)
}

// ValidateBatch classifies every vector independently, preserving input
// order. Each item's source info is tagged with its batch index, and the
// per-item results are folded into a BatchSummary.
func (v *Validator) ValidateBatch(vectors [][]float64, sourceInfo map[string]interface{}) ([]models.ValidationResult, models.BatchSummary) {
	results := make([]models.ValidationResult, 0, len(vectors))
	summary := models.BatchSummary{
		TotalEmbeddings: len(vectors),
		IssueBreakdown:  make(map[models.IssueType]int),
	}

	for i, vector := range vectors {
		itemInfo := make(map[string]interface{}, len(sourceInfo)+1)
		for k, val := range sourceInfo {
			itemInfo[k] = val
		}
		itemInfo["batch_index"] = i

		result := v.Validate(vector, itemInfo)
		results = append(results, result)

		summary.IssueBreakdown[result.IssueType]++
		switch result.Severity {
		case models.SeverityCritical:
			summary.CriticalIssues++
		case models.SeverityWarning:
			summary.WarningIssues++
		}
		if result.IsValid {
			summary.ValidEmbeddings++
		}
	}

	if summary.TotalEmbeddings > 0 {
		summary.BatchHealthScore = float64(summary.TotalEmbeddings-summary.CriticalIssues) / float64(summary.TotalEmbeddings)
	} else {
		summary.BatchHealthScore = 1.0
	}

	return results, summary
}

// result assembles a ValidationResult, attaching the pass-through source
// info and the fixed per-issue recommendations.
func (v *Validator) result(issue models.IssueType, severity models.Severity, confidence float64, details string, metrics map[string]interface{}, sourceInfo map[string]interface{}) models.ValidationResult {
	if len(sourceInfo) > 0 {
		metrics["source_info"] = sourceInfo
	}
	return models.ValidationResult{
		IsValid:         issue == models.IssueValid,
		IssueType:       issue,
		Severity:        severity,
		Confidence:      confidence,
		Details:         details,
		Metrics:         metrics,
		Recommendations: recommendationsFor(issue),
	}
}

// countNaN returns how many components are NaN
func countNaN(vector []float64) int {
	count := 0
	for _, x := range vector {
		if math.IsNaN(x) {
			count++
		}
	}
	return count
}

// countInf returns how many components are +Inf or -Inf
func countInf(vector []float64) int {
	count := 0
	for _, x := range vector {
		if math.IsInf(x, 0) {
			count++
		}
	}
	return count
}

// zeroFraction returns the fraction of components within tolerance of zero
func zeroFraction(vector []float64, tolerance float64) float64 {
	if len(vector) == 0 {
		return 0
	}
	zeros := 0
	for _, x := range vector {
		if math.Abs(x) < tolerance {
			zeros++
		}
	}
	return float64(zeros) / float64(len(vector))
}

// maxAbsValue returns the largest absolute component value
func maxAbsValue(vector []float64) float64 {
	var max float64
	for _, x := range vector {
		if abs := math.Abs(x); abs > max {
			max = abs
		}
	}
	return max
}

// variance computes the population variance of the vector
func variance(vector []float64) float64 {
	if len(vector) == 0 {
		return 0
	}
	var sum float64
	for _, x := range vector {
		sum += x
	}
	mean := sum / float64(len(vector))

	var sumSq float64
	for _, x := range vector {
		d := x - mean
		sumSq += d * d
	}
	return sumSq / float64(len(vector))
}

// countUnique returns the number of distinct component values.
// Only called after the NaN check, so map keys are well defined.
func countUnique(vector []float64) int {
	seen := make(map[float64]struct{}, len(vector))
	for _, x := range vector {
		seen[x] = struct{}{}
	}
	return len(seen)
}
