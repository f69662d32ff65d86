// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if cfg.CharmHost != "cloud.charm.sh" {
		t.Errorf("CharmHost = %s, want cloud.charm.sh", cfg.CharmHost)
	}
	if cfg.CharmDBName != "vectorguard" {
		t.Errorf("CharmDBName = %s, want vectorguard", cfg.CharmDBName)
	}
	if !cfg.AutoSync {
		t.Error("AutoSync = false, want true")
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.VectorDimension != 1536 {
		t.Errorf("VectorDimension = %d, want 1536", cfg.VectorDimension)
	}
	if cfg.ZeroTolerance != 1e-10 {
		t.Errorf("ZeroTolerance = %g, want 1e-10", cfg.ZeroTolerance)
	}
	if cfg.MostlyZerosThreshold != 0.95 {
		t.Errorf("MostlyZerosThreshold = %f, want 0.95", cfg.MostlyZerosThreshold)
	}
	if cfg.ExtremeValueThreshold != 10.0 {
		t.Errorf("ExtremeValueThreshold = %f, want 10.0", cfg.ExtremeValueThreshold)
	}
	if cfg.MinVarianceThreshold != 1e-6 {
		t.Errorf("MinVarianceThreshold = %g, want 1e-6", cfg.MinVarianceThreshold)
	}
	if cfg.MaxRepetitionThreshold != 0.8 {
		t.Errorf("MaxRepetitionThreshold = %f, want 0.8", cfg.MaxRepetitionThreshold)
	}
	if cfg.CriticalIssueThreshold != 0.05 {
		t.Errorf("CriticalIssueThreshold = %f, want 0.05", cfg.CriticalIssueThreshold)
	}
	if cfg.QualityScoreThreshold != 0.8 {
		t.Errorf("QualityScoreThreshold = %f, want 0.8", cfg.QualityScoreThreshold)
	}
	if cfg.BatchSizeThreshold != 10 {
		t.Errorf("BatchSizeThreshold = %d, want 10", cfg.BatchSizeThreshold)
	}
	if cfg.AlertCooldown != 5*time.Minute {
		t.Errorf("AlertCooldown = %v, want 5m", cfg.AlertCooldown)
	}
	if cfg.MaxRecentResults != 1000 {
		t.Errorf("MaxRecentResults = %d, want 1000", cfg.MaxRecentResults)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	// Set custom environment variables
	os.Clearenv()
	os.Setenv("CHARM_HOST", "custom.charm.sh")
	os.Setenv("CHARM_DB", "test_db")
	os.Setenv("CHARM_AUTO_SYNC", "false")
	os.Setenv("OPENAI_API_KEY", "test-key")
	os.Setenv("VECTORGUARD_EMBEDDING_MODEL", "text-embedding-3-large")
	os.Setenv("OPENAI_TIMEOUT", "45s")
	os.Setenv("OPENAI_MAX_RETRIES", "5")
	os.Setenv("VECTOR_DIMENSION", "3072")
	os.Setenv("EXTREME_VALUE_THRESHOLD", "25.5")
	os.Setenv("CRITICAL_ISSUE_THRESHOLD", "0.1")
	os.Setenv("ALERT_COOLDOWN", "10m")
	os.Setenv("MAX_RECENT_RESULTS", "250")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.CharmHost != "custom.charm.sh" {
		t.Errorf("CharmHost = %s, want custom.charm.sh", cfg.CharmHost)
	}
	if cfg.CharmDBName != "test_db" {
		t.Errorf("CharmDBName = %s, want test_db", cfg.CharmDBName)
	}
	if cfg.AutoSync {
		t.Error("AutoSync = true, want false")
	}
	if cfg.OpenAIKey != "test-key" {
		t.Errorf("OpenAIKey = %s, want test-key", cfg.OpenAIKey)
	}
	if cfg.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-large", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.Timeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.VectorDimension != 3072 {
		t.Errorf("VectorDimension = %d, want 3072", cfg.VectorDimension)
	}
	if cfg.ExtremeValueThreshold != 25.5 {
		t.Errorf("ExtremeValueThreshold = %f, want 25.5", cfg.ExtremeValueThreshold)
	}
	if cfg.CriticalIssueThreshold != 0.1 {
		t.Errorf("CriticalIssueThreshold = %f, want 0.1", cfg.CriticalIssueThreshold)
	}
	if cfg.AlertCooldown != 10*time.Minute {
		t.Errorf("AlertCooldown = %v, want 10m", cfg.AlertCooldown)
	}
	if cfg.MaxRecentResults != 250 {
		t.Errorf("MaxRecentResults = %d, want 250", cfg.MaxRecentResults)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero dimension", "VECTOR_DIMENSION", "0"},
		{"negative dimension", "VECTOR_DIMENSION", "-5"},
		{"mostly zeros above one", "MOSTLY_ZEROS_THRESHOLD", "1.5"},
		{"repetition below zero", "MAX_REPETITION_THRESHOLD", "-0.1"},
		{"critical rate above one", "CRITICAL_ISSUE_THRESHOLD", "2"},
		{"quality score above one", "QUALITY_SCORE_THRESHOLD", "1.1"},
		{"too many retries", "OPENAI_MAX_RETRIES", "11"},
		{"zero history", "MAX_RECENT_RESULTS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv(tt.key, tt.value)
			defer os.Clearenv()

			if _, err := Load(); err == nil {
				t.Errorf("Load() succeeded with %s=%s, want error", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	// Unparseable values fall back to defaults rather than failing
	os.Clearenv()
	os.Setenv("VECTOR_DIMENSION", "not-a-number")
	os.Setenv("OPENAI_TIMEOUT", "soon")
	os.Setenv("EXTREME_VALUE_THRESHOLD", "big")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.VectorDimension != 1536 {
		t.Errorf("VectorDimension = %d, want default 1536", cfg.VectorDimension)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want default 30s", cfg.Timeout)
	}
	if cfg.ExtremeValueThreshold != 10.0 {
		t.Errorf("ExtremeValueThreshold = %f, want default 10.0", cfg.ExtremeValueThreshold)
	}
}
