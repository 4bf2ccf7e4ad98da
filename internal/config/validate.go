package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Practice.validate(); err != nil {
		return fmt.Errorf("practice: %w", err)
	}

	if err := c.Dashboard.validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	return nil
}

func (p *PracticeConfig) validate() error {
	if p.MaxQuestionCount < 1 {
		return fmt.Errorf("max_question_count must be >= 1 (got %d)", p.MaxQuestionCount)
	}
	if p.MaxSecondsPerQuestion < 1 {
		return fmt.Errorf("max_seconds_per_question must be >= 1 (got %d)", p.MaxSecondsPerQuestion)
	}
	if p.DefaultQuestionCount < 1 || p.DefaultQuestionCount > p.MaxQuestionCount {
		return fmt.Errorf("default_question_count must be between 1 and %d (got %d)",
			p.MaxQuestionCount, p.DefaultQuestionCount)
	}
	if p.DefaultSecondsPerQuestion < 1 || p.DefaultSecondsPerQuestion > p.MaxSecondsPerQuestion {
		return fmt.Errorf("default_seconds_per_question must be between 1 and %d (got %d)",
			p.MaxSecondsPerQuestion, p.DefaultSecondsPerQuestion)
	}
	return nil
}

func (d *DashboardConfig) validate() error {
	if _, err := time.LoadLocation(d.DefaultTimezone); err != nil {
		return fmt.Errorf("default_timezone %q: %w", d.DefaultTimezone, err)
	}
	if d.TrendDays < 1 {
		return fmt.Errorf("trend_days must be >= 1 (got %d)", d.TrendDays)
	}
	if d.HeatmapMonths < 1 {
		return fmt.Errorf("heatmap_months must be >= 1 (got %d)", d.HeatmapMonths)
	}
	if d.RecentSessions < 0 {
		return fmt.Errorf("recent_sessions must be >= 0 (got %d)", d.RecentSessions)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerMinute < 1 {
		return fmt.Errorf("requests_per_minute must be >= 1 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", r.Burst)
	}
	if r.IdleTTL <= 0 || r.CleanupInterval <= 0 {
		return fmt.Errorf("idle_ttl and cleanup_interval must be positive")
	}
	return nil
}
