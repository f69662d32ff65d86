// ABOUTME: Centralized configuration for the embedding quality monitor
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the vectorguard system
type Config struct {
	// Charm settings (alert journal)
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// OpenAI settings (probe command)
	OpenAIKey      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Validator settings
	VectorDimension        int
	ZeroTolerance          float64
	MostlyZerosThreshold   float64
	ExtremeValueThreshold  float64
	MinVarianceThreshold   float64
	MaxRepetitionThreshold float64

	// Monitor settings
	CriticalIssueThreshold float64
	QualityScoreThreshold  float64
	BatchSizeThreshold     int
	AlertCooldown          time.Duration
	MaxRecentResults       int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CharmHost:   getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName: getEnv("CHARM_DB", "vectorguard"),
		AutoSync:    getEnvBool("CHARM_AUTO_SYNC", true),

		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel: getEnv("VECTORGUARD_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),

		VectorDimension:        getEnvInt("VECTOR_DIMENSION", 1536),
		ZeroTolerance:          getEnvFloat("ZERO_TOLERANCE", 1e-10),
		MostlyZerosThreshold:   getEnvFloat("MOSTLY_ZEROS_THRESHOLD", 0.95),
		ExtremeValueThreshold:  getEnvFloat("EXTREME_VALUE_THRESHOLD", 10.0),
		MinVarianceThreshold:   getEnvFloat("MIN_VARIANCE_THRESHOLD", 1e-6),
		MaxRepetitionThreshold: getEnvFloat("MAX_REPETITION_THRESHOLD", 0.8),

		CriticalIssueThreshold: getEnvFloat("CRITICAL_ISSUE_THRESHOLD", 0.05),
		QualityScoreThreshold:  getEnvFloat("QUALITY_SCORE_THRESHOLD", 0.8),
		BatchSizeThreshold:     getEnvInt("BATCH_SIZE_THRESHOLD", 10),
		AlertCooldown:          getEnvDuration("ALERT_COOLDOWN", 5*time.Minute),
		MaxRecentResults:       getEnvInt("MAX_RECENT_RESULTS", 1000),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.VectorDimension <= 0 {
		return fmt.Errorf("VECTOR_DIMENSION must be positive, got %d", c.VectorDimension)
	}
	if c.MostlyZerosThreshold < 0 || c.MostlyZerosThreshold > 1 {
		return fmt.Errorf("MOSTLY_ZEROS_THRESHOLD must be 0-1, got %f", c.MostlyZerosThreshold)
	}
	if c.MaxRepetitionThreshold < 0 || c.MaxRepetitionThreshold > 1 {
		return fmt.Errorf("MAX_REPETITION_THRESHOLD must be 0-1, got %f", c.MaxRepetitionThreshold)
	}
	if c.CriticalIssueThreshold < 0 || c.CriticalIssueThreshold > 1 {
		return fmt.Errorf("CRITICAL_ISSUE_THRESHOLD must be 0-1, got %f", c.CriticalIssueThreshold)
	}
	if c.QualityScoreThreshold < 0 || c.QualityScoreThreshold > 1 {
		return fmt.Errorf("QUALITY_SCORE_THRESHOLD must be 0-1, got %f", c.QualityScoreThreshold)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.MaxRecentResults <= 0 {
		return fmt.Errorf("MAX_RECENT_RESULTS must be positive, got %d", c.MaxRecentResults)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
