// ABOUTME: Alert payload model delivered to injected alert sinks
// ABOUTME: Defines alert type constants and the structured AlertPayload
package models

import "time"

// Alert types dispatched by the monitor
const (
	AlertTypeCriticalIssue    = "CRITICAL_ISSUE"
	AlertTypeHighCriticalRate = "HIGH_CRITICAL_RATE"
	AlertTypeLowQualityScore  = "LOW_QUALITY_SCORE"
)

// AlertPayload is the structured message handed to an AlertSink.
// The core defines only this shape; transport belongs to the sink.
type AlertPayload struct {
	AlertID         string                 `json:"alert_id"`
	AlertType       string                 `json:"alert_type"`
	Severity        Severity               `json:"severity"`
	IssueType       IssueType              `json:"issue_type,omitempty"`
	BatchSummary    *BatchSummary          `json:"batch_summary,omitempty"`
	Metrics         map[string]interface{} `json:"metrics,omitempty"`
	SourceInfo      map[string]interface{} `json:"source_info,omitempty"`
	Recommendations []string               `json:"recommendations,omitempty"`
	MetricsSummary  *MetricsSummary        `json:"metrics_summary,omitempty"`
	Timestamp       time.Time              `json:"timestamp"`
}
