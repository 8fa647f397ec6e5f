package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-packaging-service/internal/platform/config"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// HealthCheckName identifies the settings store in readiness reports.
const HealthCheckName = "settings-store"

var (
	_ ports.SettingsStore = (*Resilient)(nil)
	_ ports.HealthChecker = (*Resilient)(nil)
)

type lookup struct {
	value string
	found bool
}

// Resilient decorates a settings store with retry and a circuit breaker:
//
//	Circuit Breaker → Retry (exponential backoff) → Store
//
// A call rejected by an open breaker fails fast with gobreaker.ErrOpenState.
type Resilient struct {
	next    ports.SettingsStore
	breaker *gobreaker.CircuitBreaker[lookup]
	retry   config.RetryConfig
	logger  *slog.Logger
}

// NewResilient wraps next. A nil logger discards output.
func NewResilient(next ports.SettingsStore, retry config.RetryConfig, cb config.CircuitBreakerConfig, logger *slog.Logger) *Resilient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	breaker := gobreaker.NewCircuitBreaker[lookup](gobreaker.Settings{
		Name:        HealthCheckName,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isCanceled(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &Resilient{
		next:    next,
		breaker: breaker,
		retry:   retry,
		logger:  logger,
	}
}

// Get implements ports.SettingsStore.
func (r *Resilient) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := r.breaker.Execute(func() (lookup, error) {
		return r.withRetry(ctx, "get", key, func() (lookup, error) {
			v, found, err := r.next.Get(ctx, key)
			return lookup{value: v, found: found}, err
		})
	})
	if err != nil {
		return "", false, err
	}
	return res.value, res.found, nil
}

// Set implements ports.SettingsStore.
func (r *Resilient) Set(ctx context.Context, key, value string) error {
	_, err := r.breaker.Execute(func() (lookup, error) {
		return r.withRetry(ctx, "set", key, func() (lookup, error) {
			return lookup{}, r.next.Set(ctx, key, value)
		})
	})
	return err
}

func (r *Resilient) withRetry(ctx context.Context, op, key string, fn func() (lookup, error)) (lookup, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.retry.InitialInterval
	b.MaxInterval = r.retry.MaxInterval
	b.Multiplier = r.retry.Multiplier

	attempt := 0
	return backoff.Retry(ctx,
		func() (lookup, error) {
			attempt++
			res, err := fn()
			if err != nil && isCanceled(err) {
				return res, backoff.Permanent(err)
			}
			return res, err
		},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(max(r.retry.MaxAttempts, 1))),
		backoff.WithNotify(func(err error, delay time.Duration) {
			r.logger.WarnContext(ctx, "retrying settings store",
				slog.String("operation", "settings."+op),
				slog.String("key", key),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", r.retry.MaxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", err),
			)
		}),
	)
}

// Name implements ports.HealthChecker.
func (r *Resilient) Name() string {
	return HealthCheckName
}

// HealthCheck reports the store's availability from the circuit breaker
// state; it never touches the store itself.
func (r *Resilient) HealthCheck(_ context.Context) error {
	switch state := r.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", HealthCheckName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", HealthCheckName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", HealthCheckName, state)
	}
}

// Close closes the wrapped store when it owns resources.
func (r *Resilient) Close() error {
	if c, ok := r.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
