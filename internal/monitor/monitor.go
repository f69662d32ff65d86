// ABOUTME: Stateful embedding quality monitor with metrics, history and alerts
// ABOUTME: Wraps the validator, tracks cumulative quality and rate-limits alerts
package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harper/vectorguard/internal/alerts"
	"github.com/harper/vectorguard/internal/models"
	"github.com/harper/vectorguard/internal/validator"
)

// Default monitor thresholds
const (
	DefaultCriticalIssueThreshold = 0.05
	DefaultQualityScoreThreshold  = 0.8
	DefaultBatchSizeThreshold     = 10
	DefaultAlertCooldown          = 5 * time.Minute
	DefaultMaxRecentResults       = 1000
)

// Options holds the immutable configuration for a Monitor
type Options struct {
	Validator validator.Options

	// CriticalIssueThreshold is the critical rate above which a batch
	// triggers a HIGH_CRITICAL_RATE alert
	CriticalIssueThreshold float64
	// QualityScoreThreshold is the batch health score below which a batch
	// triggers a LOW_QUALITY_SCORE alert
	QualityScoreThreshold float64
	// BatchSizeThreshold is the minimum batch size for rate-based alerting
	BatchSizeThreshold int
	// AlertCooldown is the minimum gap between alerts sharing a key
	AlertCooldown time.Duration
	// MaxRecentResults bounds the diagnostic history buffer
	MaxRecentResults int
}

// DefaultOptions returns the standard monitor configuration
func DefaultOptions() *Options {
	return &Options{
		Validator:              *validator.DefaultOptions(),
		CriticalIssueThreshold: DefaultCriticalIssueThreshold,
		QualityScoreThreshold:  DefaultQualityScoreThreshold,
		BatchSizeThreshold:     DefaultBatchSizeThreshold,
		AlertCooldown:          DefaultAlertCooldown,
		MaxRecentResults:       DefaultMaxRecentResults,
	}
}

// Monitor feeds vectors through the validator, aggregates quality metrics
// and dispatches rate-limited alerts to an injected sink. Safe for
// concurrent use: metrics, history and cooldown state share one mutex.
type Monitor struct {
	validator *validator.Validator
	opts      Options
	sink      alerts.Sink
	score     ScoreStrategy
	now       func() time.Time

	mu         sync.Mutex
	metrics    models.QualityMetrics
	recent     []models.ValidationResult
	lastAlerts map[string]time.Time
}

// NewMonitor creates a Monitor. A nil opts uses DefaultOptions; a nil sink
// falls back to a no-op sink.
func NewMonitor(opts *Options, sink alerts.Sink) *Monitor {
	if opts == nil {
		opts = DefaultOptions()
	}
	if sink == nil {
		sink = alerts.NoopSink{}
	}
	return &Monitor{
		validator:  validator.NewValidator(&opts.Validator),
		opts:       *opts,
		sink:       sink,
		score:      CumulativeScore{},
		now:        time.Now,
		metrics:    models.NewQualityMetrics(),
		lastAlerts: make(map[string]time.Time),
	}
}

// Validate classifies one vector and updates the monitor state. When
// raiseOnCritical is true a critical finding is also returned as an error;
// the result is returned either way. Warnings never produce an error.
func (m *Monitor) Validate(vector []float64, sourceInfo map[string]interface{}, raiseOnCritical bool) (models.ValidationResult, error) {
	// Classification is pure and stays outside the critical section
	result := m.validator.Validate(vector, sourceInfo)

	var pending []models.AlertPayload

	m.mu.Lock()
	m.recordLocked(result)
	if result.Severity == models.SeverityCritical {
		key := "critical_" + string(result.IssueType)
		if payload, ok := m.prepareAlertLocked(key, models.AlertPayload{
			AlertType:       models.AlertTypeCriticalIssue,
			Severity:        models.SeverityCritical,
			IssueType:       result.IssueType,
			Metrics:         result.Metrics,
			SourceInfo:      sourceInfo,
			Recommendations: result.Recommendations,
		}); ok {
			pending = append(pending, payload)
		}
	}
	m.mu.Unlock()

	// The condition is logged every time, even when the alert is suppressed
	switch result.Severity {
	case models.SeverityCritical:
		log.Printf("critical embedding issue: %s: %s", result.IssueType, result.Details)
	case models.SeverityWarning:
		log.Printf("embedding quality warning: %s: %s", result.IssueType, result.Details)
	}

	m.dispatch(pending)

	if raiseOnCritical && result.Severity == models.SeverityCritical {
		return result, m.validator.CreateError(result, "")
	}
	return result, nil
}

// ValidateBatch classifies a batch and folds every item into the metrics
// and history. Alerting is evaluated once per call at batch granularity.
// When raiseOnCritical is true and the batch contains critical findings,
// the error derives from the first critical result in input order, after
// all bookkeeping has completed.
func (m *Monitor) ValidateBatch(vectors [][]float64, sourceInfo map[string]interface{}, raiseOnCritical bool) ([]models.ValidationResult, models.BatchSummary, error) {
	results, summary := m.validator.ValidateBatch(vectors, sourceInfo)

	highCriticalRate := summary.TotalEmbeddings >= m.opts.BatchSizeThreshold &&
		float64(summary.CriticalIssues)/float64(summary.TotalEmbeddings) > m.opts.CriticalIssueThreshold
	lowHealthScore := summary.BatchHealthScore < m.opts.QualityScoreThreshold

	var pending []models.AlertPayload

	m.mu.Lock()
	for _, result := range results {
		m.recordLocked(result)
	}
	if highCriticalRate {
		if payload, ok := m.prepareAlertLocked("batch_critical_rate", models.AlertPayload{
			AlertType:    models.AlertTypeHighCriticalRate,
			Severity:     models.SeverityCritical,
			BatchSummary: &summary,
			SourceInfo:   sourceInfo,
		}); ok {
			pending = append(pending, payload)
		}
	}
	if lowHealthScore {
		if payload, ok := m.prepareAlertLocked("batch_low_quality", models.AlertPayload{
			AlertType:    models.AlertTypeLowQualityScore,
			Severity:     models.SeverityWarning,
			BatchSummary: &summary,
			SourceInfo:   sourceInfo,
		}); ok {
			pending = append(pending, payload)
		}
	}
	m.mu.Unlock()

	if highCriticalRate {
		log.Printf("batch critical rate %d/%d exceeds threshold %.2f",
			summary.CriticalIssues, summary.TotalEmbeddings, m.opts.CriticalIssueThreshold)
	}
	if lowHealthScore {
		log.Printf("batch health score %.3f below threshold %.2f",
			summary.BatchHealthScore, m.opts.QualityScoreThreshold)
	}

	m.dispatch(pending)

	if raiseOnCritical {
		for _, result := range results {
			if result.Severity == models.SeverityCritical {
				return results, summary, m.validator.CreateError(result, "batch")
			}
		}
	}
	return results, summary, nil
}

// GetMetricsSummary returns a snapshot of the cumulative metrics
func (m *Monitor) GetMetricsSummary() models.MetricsSummary {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[models.IssueType]int, len(m.metrics.IssueCounts))
	for k, v := range m.metrics.IssueCounts {
		counts[k] = v
	}
	return models.MetricsSummary{
		TotalProcessed: m.metrics.TotalProcessed,
		IssueCounts:    counts,
		QualityScore:   m.metrics.QualityScore,
		AlertsSent:     m.metrics.AlertsSent,
		LastUpdated:    m.metrics.LastUpdated,
		RecentResults:  len(m.recent),
	}
}

// GetRecentIssues returns up to limit invalid results from the history
// buffer, most recent last. A non-positive limit returns nothing.
func (m *Monitor) GetRecentIssues(limit int) []models.ValidationResult {
	if limit <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	issues := make([]models.ValidationResult, 0, limit)
	for _, result := range m.recent {
		if !result.IsValid {
			issues = append(issues, result)
		}
	}
	if len(issues) > limit {
		issues = issues[len(issues)-limit:]
	}
	return issues
}

// ResetMetrics clears counters, history and cooldown state. Primarily for
// tests and explicit lifecycle resets.
func (m *Monitor) ResetMetrics() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.metrics = models.NewQualityMetrics()
	m.recent = nil
	m.lastAlerts = make(map[string]time.Time)
}

// recordLocked folds one result into counters and history. Caller holds mu.
func (m *Monitor) recordLocked(result models.ValidationResult) {
	m.metrics.TotalProcessed++
	m.metrics.IssueCounts[result.IssueType]++
	m.metrics.QualityScore = m.score.Score(&m.metrics)
	m.metrics.LastUpdated = m.now()

	m.recent = append(m.recent, result)
	if max := m.opts.MaxRecentResults; max > 0 && len(m.recent) > max {
		m.recent = m.recent[len(m.recent)-max:]
	}
}

// prepareAlertLocked applies the cooldown gate for the given key and, if it
// passes, stamps the payload and marks the alert as fired. Caller holds mu;
// delivery happens later, outside the lock.
func (m *Monitor) prepareAlertLocked(key string, payload models.AlertPayload) (models.AlertPayload, bool) {
	now := m.now()
	if last, ok := m.lastAlerts[key]; ok && now.Sub(last) < m.opts.AlertCooldown {
		return models.AlertPayload{}, false
	}
	m.lastAlerts[key] = now
	m.metrics.AlertsSent++

	summary := models.MetricsSummary{
		TotalProcessed: m.metrics.TotalProcessed,
		QualityScore:   m.metrics.QualityScore,
		AlertsSent:     m.metrics.AlertsSent,
		LastUpdated:    m.metrics.LastUpdated,
		RecentResults:  len(m.recent),
	}

	payload.AlertID = uuid.New().String()
	payload.MetricsSummary = &summary
	payload.Timestamp = now
	return payload, true
}

// dispatch delivers prepared alerts outside the critical section so a slow
// sink cannot block validation. Delivery is at-most-once; failures are
// logged and dropped.
func (m *Monitor) dispatch(pending []models.AlertPayload) {
	for _, payload := range pending {
		if err := m.sink.Notify(context.Background(), payload); err != nil {
			log.Printf("alert delivery failed for %s: %v", payload.AlertType, err)
		}
	}
}
