// ABOUTME: Quality score strategies derived from cumulative issue counters
// ABOUTME: Default is the cumulative penalty formula; swappable for windowed
package monitor

import "github.com/harper/vectorguard/internal/models"

// ScoreStrategy computes a quality score in [0,1] from the current counters.
// The score must be a pure function of the metrics passed in.
type ScoreStrategy interface {
	Score(m *models.QualityMetrics) float64
}

// CumulativeScore is the default strategy: penalties accumulate over the
// monitor's entire lifetime. Critical issues weigh 0.8, warnings 0.2.
// Note the critical penalty only counts all-zero, mostly-zero and dimension
// issues; NaN and Inf vectors are alerted on but do not feed the score.
type CumulativeScore struct{}

// Score implements ScoreStrategy
func (CumulativeScore) Score(m *models.QualityMetrics) float64 {
	if m.TotalProcessed == 0 {
		return 1.0
	}

	total := float64(m.TotalProcessed)
	criticalPenalty := float64(m.CriticalIssueCount()) / total * 0.8
	warningPenalty := float64(m.WarningIssueCount()) / total * 0.2

	score := 1.0 - criticalPenalty - warningPenalty
	if score < 0 {
		score = 0
	}
	return score
}
