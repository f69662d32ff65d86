// ABOUTME: Tests for validation result models
// ABOUTME: Verifies score-penalty membership of each issue type
package models

import "testing"

func TestIssuePenaltyMembership(t *testing.T) {
	tests := []struct {
		issue        IssueType
		wantCritical bool
		wantWarning  bool
	}{
		{IssueAllZeros, true, false},
		{IssueMostlyZeros, true, false},
		{IssueInvalidDimensions, true, false},
		{IssueExtremeValues, false, true},
		{IssueSuspiciousPattern, false, true},
		{IssueInsufficientVariance, false, true},
		// NaN and Inf are alerted on but sit outside both penalty groups
		{IssueNaNValues, false, false},
		{IssueInfiniteValues, false, false},
		{IssueValid, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.issue), func(t *testing.T) {
			if got := IsCriticalIssue(tt.issue); got != tt.wantCritical {
				t.Errorf("IsCriticalIssue(%s) = %v, want %v", tt.issue, got, tt.wantCritical)
			}
			if got := IsWarningIssue(tt.issue); got != tt.wantWarning {
				t.Errorf("IsWarningIssue(%s) = %v, want %v", tt.issue, got, tt.wantWarning)
			}
		})
	}
}
