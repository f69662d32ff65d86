// ABOUTME: Fixed remediation checklists attached to validation results
// ABOUTME: Maps each issue type to operator-facing next steps
package validator

import "github.com/harper/vectorguard/internal/models"

// recommendationsFor returns the fixed checklist for an issue type.
// Valid results carry no recommendations.
func recommendationsFor(issue models.IssueType) []string {
	switch issue {
	case models.IssueAllZeros:
		return []string{
			"Check that the embedding API key is valid and not expired",
			"Check for rate limiting or quota exhaustion on the embedding service",
			"Verify the input text is not empty",
		}
	case models.IssueMostlyZeros:
		return []string{
			"Check for truncated or partially failed embedding responses",
			"Verify the input text length and encoding",
			"Check the embedding service logs for degraded output",
		}
	case models.IssueInvalidDimensions:
		return []string{
			"Verify the embedding model matches the configured dimension",
			"Check for malformed or truncated responses from the embedding service",
		}
	case models.IssueNaNValues:
		return []string{
			"Check for numeric overflow in upstream normalization",
			"Verify the embedding service returned finite values",
		}
	case models.IssueInfiniteValues:
		return []string{
			"Check for division by zero in upstream post-processing",
			"Verify the embedding service returned finite values",
		}
	case models.IssueExtremeValues:
		return []string{
			"Check whether the embeddings are supposed to be normalized",
			"Verify the embedding model version has not changed",
		}
	case models.IssueInsufficientVariance:
		return []string{
			"Verify the input text has meaningful content",
			"Check for placeholder or constant vectors from the upstream service",
		}
	case models.IssueSuspiciousPattern:
		return []string{
			"Check for stubbed or cached responses in the embedding pipeline",
			"Verify the embedding service is not returning test fixtures",
		}
	}
	return nil
}
