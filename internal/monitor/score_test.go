// ABOUTME: Tests for quality score strategies
// ABOUTME: Verifies the cumulative penalty formula and its edge cases
package monitor

import (
	"math"
	"testing"

	"github.com/harper/vectorguard/internal/models"
)

func TestCumulativeScore(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		counts map[models.IssueType]int
		want   float64
	}{
		{
			name:  "no observations",
			total: 0,
			want:  1.0,
		},
		{
			name:   "all valid",
			total:  50,
			counts: map[models.IssueType]int{models.IssueValid: 50},
			want:   1.0,
		},
		{
			name:  "critical issues weigh 0.8",
			total: 10,
			counts: map[models.IssueType]int{
				models.IssueValid:    9,
				models.IssueAllZeros: 1,
			},
			want: 1.0 - 0.1*0.8,
		},
		{
			name:  "warnings weigh 0.2",
			total: 10,
			counts: map[models.IssueType]int{
				models.IssueValid:         9,
				models.IssueExtremeValues: 1,
			},
			want: 1.0 - 0.1*0.2,
		},
		{
			name:  "mixed criticals and warnings",
			total: 100,
			counts: map[models.IssueType]int{
				models.IssueValid:                80,
				models.IssueAllZeros:             5,
				models.IssueMostlyZeros:          3,
				models.IssueInvalidDimensions:    2,
				models.IssueExtremeValues:        6,
				models.IssueInsufficientVariance: 3,
				models.IssueSuspiciousPattern:    1,
			},
			want: 1.0 - 0.10*0.8 - 0.10*0.2,
		},
		{
			name:  "NaN and Inf counts do not feed the score",
			total: 10,
			counts: map[models.IssueType]int{
				models.IssueValid:          8,
				models.IssueNaNValues:      1,
				models.IssueInfiniteValues: 1,
			},
			want: 1.0,
		},
		{
			name:  "everything critical floors near 0.2",
			total: 10,
			counts: map[models.IssueType]int{
				models.IssueAllZeros: 10,
			},
			want: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := models.NewQualityMetrics()
			metrics.TotalProcessed = tt.total
			for issue, count := range tt.counts {
				metrics.IssueCounts[issue] = count
			}

			got := CumulativeScore{}.Score(&metrics)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %f, want %f", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Score = %f, want within [0,1]", got)
			}
		})
	}
}
