package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultNotifyCapacity = 50
	defaultRateLimitRPS   = 5.0
	defaultRateLimitBurst = 10

	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 28
)

// defaults returns the built-in configuration values. They form the lowest
// layer and are overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":             "info",
		"log.format":            "json",
		"log.file.path":         "",
		"log.file.max_size_mb":  defaultLogMaxSizeMB,
		"log.file.max_backups":  defaultLogMaxBackups,
		"log.file.max_age_days": defaultLogMaxAgeDays,
		"log.file.compress":     false,

		"settings.driver":                          "memory",
		"settings.path":                            "",
		"settings.retry.max_attempts":              defaultRetryMaxAttempts,
		"settings.retry.initial_interval":          "50ms",
		"settings.retry.max_interval":              "1s",
		"settings.retry.multiplier":                defaultRetryMultiplier,
		"settings.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"settings.circuit_breaker.timeout":         "30s",
		"settings.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"packaging.scripts_dir":        "",
		"packaging.max_package_weight": "20",

		"notify.capacity": defaultNotifyCapacity,

		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst":               defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "packaging-service",
	}
}
