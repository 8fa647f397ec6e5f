// Package config provides configuration loading and validation for the service.
// Configuration is loaded in layers: built-in defaults -> base.yaml ->
// {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Settings  SettingsConfig  `koanf:"settings"`
	Packaging PackagingConfig `koanf:"packaging"`
	Notify    NotifyConfig    `koanf:"notify"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"`
	Format string        `koanf:"format"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig enables rotating file output in addition to stderr when
// Path is set.
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// SettingsConfig selects and tunes the settings store.
type SettingsConfig struct {
	Driver         string               `koanf:"driver"`
	Path           string               `koanf:"path"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// PackagingConfig holds strategy registry settings.
type PackagingConfig struct {
	// ScriptsDir holds JavaScript strategies; empty disables script loading.
	ScriptsDir string `koanf:"scripts_dir"`
	// MaxPackageWeight is the by_weight limit as a decimal string.
	MaxPackageWeight string `koanf:"max_package_weight"`
}

// MaxWeight returns MaxPackageWeight parsed as a decimal. Call after
// Validate; an unparsable value yields zero.
func (p PackagingConfig) MaxWeight() decimal.Decimal {
	d, err := decimal.NewFromString(p.MaxPackageWeight)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NotifyConfig sizes the flash message queue.
type NotifyConfig struct {
	Capacity int `koanf:"capacity"`
}

// RateLimitConfig limits strategy submissions. Zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
