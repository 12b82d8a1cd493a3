package config

import (
	"fmt"
	"slices"
)

var signalProviders = []string{
	SignalProviderDisabled,
	SignalProviderGoogle,
	SignalProviderAnthropic,
	SignalProviderOpenAI,
	SignalProviderGemini,
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Signals.validate(); err != nil {
		return fmt.Errorf("signals: %w", err)
	}

	if err := c.Validation.Validate(); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	if c.Retention.SubmissionDays <= 0 {
		return fmt.Errorf("retention.submission_days must be > 0 (got %d)", c.Retention.SubmissionDays)
	}

	if c.RateLimit.SubmitPerMinute <= 0 {
		return fmt.Errorf("rate_limit.submit_per_minute must be > 0 (got %d)", c.RateLimit.SubmitPerMinute)
	}

	return nil
}

func (s *SignalsConfig) validate() error {
	if !slices.Contains(signalProviders, s.Provider) {
		return fmt.Errorf("provider must be one of %v (got %q)", signalProviders, s.Provider)
	}
	if s.Provider != SignalProviderDisabled && s.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %q", s.Provider)
	}
	if s.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0 (got %v)", s.HTTPTimeout)
	}
	return nil
}

// Validate checks the thresholds for internal consistency.
func (v ValidationConfig) Validate() error {
	if v.MinLength < 0 {
		return fmt.Errorf("min_length must be >= 0 (got %d)", v.MinLength)
	}
	if v.MaxLength <= v.MinLength {
		return fmt.Errorf("max_length must be > min_length (got %d <= %d)", v.MaxLength, v.MinLength)
	}
	if v.ShoutingRatio <= 0 || v.ShoutingRatio > 1 {
		return fmt.Errorf("shouting_ratio must be in (0, 1] (got %v)", v.ShoutingRatio)
	}
	if v.SpecialCharRatio <= 0 || v.SpecialCharRatio > 1 {
		return fmt.Errorf("special_char_ratio must be in (0, 1] (got %v)", v.SpecialCharRatio)
	}
	if v.NegativeErrorThreshold > v.NegativeWarnThreshold {
		return fmt.Errorf("negative_error_threshold must be <= negative_warn_threshold (got %v > %v)",
			v.NegativeErrorThreshold, v.NegativeWarnThreshold)
	}
	if v.NegativeWarnThreshold < -1 || v.NegativeErrorThreshold < -1 {
		return fmt.Errorf("negative thresholds must be >= -1")
	}
	if v.SemanticConcurrency <= 0 {
		return fmt.Errorf("semantic_concurrency must be > 0 (got %d)", v.SemanticConcurrency)
	}
	if v.SignalTimeout <= 0 {
		return fmt.Errorf("signal_timeout must be > 0 (got %v)", v.SignalTimeout)
	}
	return nil
}
