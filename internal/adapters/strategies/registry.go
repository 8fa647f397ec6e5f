// Package strategies provides the packaging strategy registry. Strategies are
// registered with a descriptor and a factory; every Instance call asks the
// factory for a new strategy so no state leaks between invocations.
package strategies

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// Compile-time check that Registry implements ports.StrategyRegistry.
var _ ports.StrategyRegistry = (*Registry)(nil)

var (
	// ErrDuplicateStrategy is returned when an id is registered twice.
	ErrDuplicateStrategy = errors.New("strategy already registered")
	// ErrInvalidDescriptor is returned for a descriptor without an id or a
	// registration without a factory.
	ErrInvalidDescriptor = errors.New("invalid strategy descriptor")
)

// Factory builds a new strategy instance.
type Factory func() (packaging.Strategy, error)

// Registrar is the write side of the registry used by strategy providers.
type Registrar interface {
	Register(d packaging.Descriptor, f Factory) error
}

// Registry is an ordered, concurrency-safe strategy registry.
type Registry struct {
	mu        sync.RWMutex
	order     []packaging.Descriptor
	factories map[string]Factory
	logger    *slog.Logger
}

// NewRegistry creates an empty Registry. A nil logger discards output.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		factories: make(map[string]Factory),
		logger:    logger,
	}
}

// Register adds a strategy. Ids are trimmed and must be unique.
func (r *Registry) Register(d packaging.Descriptor, f Factory) error {
	d.ID = strings.TrimSpace(d.ID)
	if d.ID == "" {
		return fmt.Errorf("%w: id required", ErrInvalidDescriptor)
	}
	if f == nil {
		return fmt.Errorf("%w: factory required for %q", ErrInvalidDescriptor, d.ID)
	}
	if d.AdminLabel == "" {
		d.AdminLabel = d.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[d.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateStrategy, d.ID)
	}
	r.order = append(r.order, d)
	r.factories[d.ID] = f
	return nil
}

// List returns a copy of all descriptors in registration order.
func (r *Registry) List() []packaging.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]packaging.Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Instance builds a new strategy for id. It returns false for an unknown id
// or when the factory fails; factory failures are logged.
func (r *Registry) Instance(id string) (packaging.Strategy, bool) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	s, err := f()
	if err != nil {
		r.logger.Error("failed to instantiate strategy",
			slog.String("strategy", id),
			slog.Any("error", err),
		)
		return nil, false
	}
	if s == nil {
		return nil, false
	}
	return s, true
}

// Len returns the number of registered strategies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
