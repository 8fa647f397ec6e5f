// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// Compile-time check that PackagingDebugService implements ports.PackagingDebugService.
var _ ports.PackagingDebugService = (*PackagingDebugService)(nil)

// PackagingDebugService implements the packaging strategy debug workflow.
// It reads and writes the selected strategy through the settings store,
// instantiates strategies from the registry and reports every invocation on
// the notifier. It keeps no state between calls.
type PackagingDebugService struct {
	registry ports.StrategyRegistry
	store    ports.SettingsStore
	notifier ports.Notifier
	metrics  *telemetry.Metrics
	tracer   trace.Tracer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a PackagingDebugService.
type Option func(*PackagingDebugService)

// WithMetrics records strategy invocation metrics on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *PackagingDebugService) { s.metrics = m }
}

// WithClock overrides the clock used to stamp reports and messages.
func WithClock(now func() time.Time) Option {
	return func(s *PackagingDebugService) { s.now = now }
}

// NewPackagingDebugService creates a PackagingDebugService. A nil logger is
// replaced with one that discards output.
func NewPackagingDebugService(
	registry ports.StrategyRegistry,
	store ports.SettingsStore,
	notifier ports.Notifier,
	logger *slog.Logger,
	opts ...Option,
) *PackagingDebugService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &PackagingDebugService{
		registry: registry,
		store:    store,
		notifier: notifier,
		tracer:   otel.Tracer(telemetry.ScopeName),
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListStrategies returns the registry descriptors in registry order.
func (s *PackagingDebugService) ListStrategies(_ context.Context) ([]packaging.Descriptor, error) {
	return s.registry.List(), nil
}

// RenderSelectionForm builds the selection form, defaulting to the persisted
// strategy or the first registry entry.
func (s *PackagingDebugService) RenderSelectionForm(ctx context.Context) (*packaging.SelectionForm, error) {
	current, found, err := s.store.Get(ctx, packaging.SettingsKeyStrategy)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read selected strategy",
			slog.String("operation", "RenderSelectionForm"),
			slog.String("key", packaging.SettingsKeyStrategy),
			slog.Any("error", err),
		)
		return nil, &domain.PersistenceError{Op: "get", Key: packaging.SettingsKeyStrategy, Err: err}
	}

	descriptors := s.registry.List()
	form := packaging.BuildSelectionForm(descriptors, current, found)

	ops, err := dumpDescriptors(descriptors)
	if err != nil {
		return nil, fmt.Errorf("dumping strategies: %w", err)
	}
	form.Operations = ops

	if form.Stale {
		s.logger.WarnContext(ctx, "persisted strategy is not registered",
			slog.String("strategy", current),
		)
	}

	return &form, nil
}

// SubmitSelection trims the strategy id and rejects an empty or unregistered
// one with a domain.ValidationError before anything is persisted, then
// applies it.
func (s *PackagingDebugService) SubmitSelection(ctx context.Context, input ports.SelectionInput) (*packaging.InvocationReport, error) {
	id := strings.TrimSpace(input.StrategyID)
	switch {
	case id == "":
		return nil, &domain.ValidationError{Fields: map[string]string{
			packaging.FieldStrategy: "is required",
		}}
	case !registered(s.registry.List(), id):
		return nil, &domain.ValidationError{Fields: map[string]string{
			packaging.FieldStrategy: fmt.Sprintf("%q is not an available strategy", id),
		}}
	}

	return s.ApplySelection(ctx, id)
}

// ApplySelection persists id, runs the strategy against two fresh sample
// products and reports the result. The persisted value is never rolled back.
func (s *PackagingDebugService) ApplySelection(ctx context.Context, id string) (*packaging.InvocationReport, error) {
	ctx, span := s.tracer.Start(ctx, "PackagingDebugService.ApplySelection",
		trace.WithAttributes(telemetry.AttrStrategy.String(id)),
	)
	defer span.End()

	s.logger.InfoContext(ctx, "applying packaging strategy", slog.String("strategy", id))

	if err := s.store.Set(ctx, packaging.SettingsKeyStrategy, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist selected strategy",
			slog.String("operation", "ApplySelection"),
			slog.String("strategy", id),
			slog.Any("error", err),
		)
		perr := &domain.PersistenceError{Op: "set", Key: packaging.SettingsKeyStrategy, Err: err}
		span.SetStatus(codes.Error, perr.Error())
		return nil, perr
	}

	strategy, ok := s.registry.Instance(id)
	if !ok {
		s.logger.WarnContext(ctx, "strategy not found in registry",
			slog.String("operation", "ApplySelection"),
			slog.String("strategy", id),
		)
		uerr := &domain.UnknownStrategyError{ID: id}
		span.SetStatus(codes.Error, uerr.Error())
		return nil, uerr
	}

	pc := packaging.NewContext()
	pc.SetStrategy(strategy)
	products := packaging.SampleProducts()

	packages, err := s.invoke(ctx, id, pc, products)
	if err != nil {
		s.logger.ErrorContext(ctx, "strategy failed",
			slog.String("operation", "ApplySelection"),
			slog.String("strategy", id),
			slog.Any("error", err),
		)
		serr := &domain.StrategyExecutionError{ID: id, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, serr.Error())
		return nil, serr
	}

	dump, err := dumpInvocation(packages)
	if err != nil {
		return nil, fmt.Errorf("dumping packages: %w", err)
	}

	report := &packaging.InvocationReport{
		StrategyID: id,
		AdminLabel: adminLabel(s.registry.List(), id),
		Products:   products,
		Packages:   packages,
		Dump:       dump,
		InvokedAt:  s.now(),
	}

	s.notify(ctx, ports.Message{Level: ports.LevelStatus, Text: dump, CreatedAt: report.InvokedAt})

	return report, nil
}

// invoke runs the bound strategy, converting a panic into an error.
func (s *PackagingDebugService) invoke(ctx context.Context, id string, pc *packaging.Context, products []packaging.Product) (packages []packaging.Package, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		s.record(ctx, id, time.Since(start), err)
	}()

	packages, err = pc.PackageProducts(ctx, products)
	if err != nil {
		return nil, err
	}
	if packages == nil {
		packages = []packaging.Package{}
	}
	return packages, nil
}

func (s *PackagingDebugService) record(ctx context.Context, id string, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrStrategy.String(id),
		telemetry.AttrResult.String(result),
	)
	s.metrics.StrategyInvocationTotal.Add(ctx, 1, attrs)
	s.metrics.StrategyInvocationDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// notify delivers msg. A failed delivery does not fail the submission.
func (s *PackagingDebugService) notify(ctx context.Context, msg ports.Message) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to deliver message",
			slog.String("operation", "ApplySelection"),
			slog.String("level", string(msg.Level)),
			slog.Any("error", err),
		)
		trace.SpanFromContext(ctx).AddEvent("notify failed",
			trace.WithAttributes(attribute.String("error", err.Error())),
		)
	}
}

func registered(descriptors []packaging.Descriptor, id string) bool {
	for _, d := range descriptors {
		if d.ID == id {
			return true
		}
	}
	return false
}

func adminLabel(descriptors []packaging.Descriptor, id string) string {
	for _, d := range descriptors {
		if d.ID == id {
			return d.AdminLabel
		}
	}
	return ""
}
