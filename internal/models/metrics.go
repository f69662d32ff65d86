// ABOUTME: Cumulative quality metrics tracked by the embedding monitor
// ABOUTME: Defines QualityMetrics counters and the MetricsSummary snapshot
package models

import "time"

// QualityMetrics holds running counters for everything a monitor has seen.
// QualityScore is always recomputed from the counters, never drifted.
type QualityMetrics struct {
	TotalProcessed int               `json:"total_processed"`
	IssueCounts    map[IssueType]int `json:"issue_counts"`
	QualityScore   float64           `json:"quality_score"`
	AlertsSent     int               `json:"alerts_sent"`
	LastUpdated    time.Time         `json:"last_updated"`
}

// NewQualityMetrics returns zeroed metrics with a quality score of 1.0
func NewQualityMetrics() QualityMetrics {
	return QualityMetrics{
		IssueCounts:  make(map[IssueType]int),
		QualityScore: 1.0,
	}
}

// CriticalIssueCount sums the counters that feed the critical penalty
func (m *QualityMetrics) CriticalIssueCount() int {
	return m.IssueCounts[IssueAllZeros] + m.IssueCounts[IssueMostlyZeros] + m.IssueCounts[IssueInvalidDimensions]
}

// WarningIssueCount sums the counters that feed the warning penalty
func (m *QualityMetrics) WarningIssueCount() int {
	return m.IssueCounts[IssueExtremeValues] + m.IssueCounts[IssueSuspiciousPattern] + m.IssueCounts[IssueInsufficientVariance]
}

// MetricsSummary is the snapshot form returned to callers on demand
type MetricsSummary struct {
	TotalProcessed int               `json:"total_processed"`
	IssueCounts    map[IssueType]int `json:"issue_counts"`
	QualityScore   float64           `json:"quality_score"`
	AlertsSent     int               `json:"alerts_sent"`
	LastUpdated    time.Time         `json:"last_updated"`
	RecentResults  int               `json:"recent_results"`
}
