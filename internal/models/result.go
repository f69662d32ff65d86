// ABOUTME: Classification result models for embedding quality validation
// ABOUTME: Defines IssueType, Severity, ValidationResult and BatchSummary
package models

// IssueType identifies the kind of problem found in an embedding vector
type IssueType string

// Issue types, ordered roughly by check priority
const (
	IssueAllZeros             IssueType = "all_zeros"
	IssueMostlyZeros          IssueType = "mostly_zeros"
	IssueInvalidDimensions    IssueType = "invalid_dimensions"
	IssueExtremeValues        IssueType = "extreme_values"
	IssueNaNValues            IssueType = "nan_values"
	IssueInfiniteValues       IssueType = "infinite_values"
	IssueInsufficientVariance IssueType = "insufficient_variance"
	IssueSuspiciousPattern    IssueType = "suspicious_pattern"
	IssueValid                IssueType = "valid"
)

// Severity indicates how serious a validation finding is
type Severity string

// Severity levels
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ValidationResult is the verdict for a single embedding vector.
// Invariant: IssueType == IssueValid, IsValid == true and
// Severity == SeverityInfo always hold (or fail to hold) together.
type ValidationResult struct {
	IsValid         bool                   `json:"is_valid"`
	IssueType       IssueType              `json:"issue_type"`
	Severity        Severity               `json:"severity"`
	Confidence      float64                `json:"confidence"`
	Details         string                 `json:"details"`
	Metrics         map[string]interface{} `json:"metrics,omitempty"`
	Recommendations []string               `json:"recommendations,omitempty"`
}

// BatchSummary aggregates validation results for one batch of embeddings
type BatchSummary struct {
	TotalEmbeddings  int               `json:"total_embeddings"`
	ValidEmbeddings  int               `json:"valid_embeddings"`
	CriticalIssues   int               `json:"critical_issues"`
	WarningIssues    int               `json:"warning_issues"`
	IssueBreakdown   map[IssueType]int `json:"issue_breakdown"`
	BatchHealthScore float64           `json:"batch_health_score"`
}

// IsCriticalIssue reports whether an issue type counts toward the
// critical penalty in the quality score formula
func IsCriticalIssue(t IssueType) bool {
	switch t {
	case IssueAllZeros, IssueMostlyZeros, IssueInvalidDimensions:
		return true
	}
	return false
}

// IsWarningIssue reports whether an issue type counts toward the
// warning penalty in the quality score formula
func IsWarningIssue(t IssueType) bool {
	switch t {
	case IssueExtremeValues, IssueSuspiciousPattern, IssueInsufficientVariance:
		return true
	}
	return false
}
