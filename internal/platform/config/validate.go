package config

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Settings.validate(),
		c.Packaging.validate(),
		c.Notify.validate(),
		c.RateLimit.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	if l.File.Path != "" && l.File.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("log.file.max_size_mb must be >= 1, got %d", l.File.MaxSizeMB))
	}

	return errors.Join(errs...)
}

func (s *SettingsConfig) validate() error {
	var errs []error

	switch s.Driver {
	case "memory":
	case "sqlite", "badger":
		if s.Path == "" {
			errs = append(errs, fmt.Errorf("settings.path must not be empty for driver %q", s.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("settings.driver must be one of: memory, sqlite, badger; got %q", s.Driver))
	}

	if s.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("settings.retry.max_attempts must be >= 1, got %d", s.Retry.MaxAttempts))
	}
	if s.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("settings.retry.multiplier must be positive, got %f", s.Retry.Multiplier))
	}
	if s.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("settings.circuit_breaker.max_failures must be >= 1, got %d",
			s.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (p *PackagingConfig) validate() error {
	w, err := decimal.NewFromString(p.MaxPackageWeight)
	if err != nil {
		return fmt.Errorf("packaging.max_package_weight must be a decimal, got %q", p.MaxPackageWeight)
	}
	if !w.IsPositive() {
		return fmt.Errorf("packaging.max_package_weight must be positive, got %s", w)
	}
	return nil
}

func (n *NotifyConfig) validate() error {
	if n.Capacity < 1 {
		return fmt.Errorf("notify.capacity must be >= 1, got %d", n.Capacity)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	var errs []error

	if r.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must not be negative, got %f", r.RequestsPerSecond))
	}
	if r.RequestsPerSecond > 0 && r.Burst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit.burst must be >= 1 when limiting is enabled, got %d", r.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
