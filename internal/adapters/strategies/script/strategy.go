package script

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dop251/goja"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
)

// Strategy runs a script's packageProducts function. It owns its runtime and
// is not safe for concurrent use.
type Strategy struct {
	module *Module
	rt     *goja.Runtime
	fn     goja.Callable
}

// NewStrategy creates a runtime for m and resolves its packageProducts export.
func NewStrategy(m *Module, logger *slog.Logger) (*Strategy, error) {
	if m == nil {
		return nil, fmt.Errorf("script strategy: module required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rt := goja.New()
	exports, err := runModule(rt, m.Program, logger.With(slog.String("strategy", m.ID)))
	if err != nil {
		return nil, fmt.Errorf("script strategy %s: %w", m.ID, err)
	}
	fn, ok := goja.AssertFunction(exports.Get(exportFunction))
	if !ok {
		return nil, fmt.Errorf("script strategy %s: %w: %s", m.ID, ErrExportMissing, exportFunction)
	}
	return &Strategy{module: m, rt: rt, fn: fn}, nil
}

// PackageProducts implements packaging.Strategy. Cancelling ctx interrupts
// the script.
func (s *Strategy) PackageProducts(ctx context.Context, products []packaging.Product) ([]packaging.Package, error) {
	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		s.rt.Interrupt(ctx.Err())
		close(interrupted)
	})
	defer func() {
		// The interrupt must land before it is cleared.
		if !stop() {
			<-interrupted
		}
		s.rt.ClearInterrupt()
	}()

	input := make([]any, 0, len(products))
	byID := make(map[string]packaging.Product, len(products))
	for _, p := range products {
		id := p.ID.String()
		byID[id] = p
		input = append(input, map[string]any{
			"id":     id,
			"sku":    p.SKU,
			"weight": p.Weight.String(),
			"price":  p.Price.String(),
		})
	}

	result, err := s.fn(goja.Undefined(), s.rt.ToValue(input))
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", s.module.ID, err)
	}

	return s.collect(result, byID)
}

func (s *Strategy) collect(result goja.Value, byID map[string]packaging.Product) ([]packaging.Package, error) {
	exported := result.Export()
	raw, ok := exported.([]any)
	if !ok {
		return nil, fmt.Errorf("script %s: %s must return an array, got %T", s.module.ID, exportFunction, exported)
	}

	seen := make(map[string]bool, len(byID))
	out := make([]packaging.Package, 0, len(raw))
	for i, entry := range raw {
		ids, ok := entry.([]any)
		if !ok {
			return nil, fmt.Errorf("script %s: package %d is not an array", s.module.ID, i)
		}
		pkg := make([]packaging.Product, 0, len(ids))
		for _, v := range ids {
			id, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("script %s: package %d holds non-string id %v", s.module.ID, i, v)
			}
			if _, err := uuid.Parse(id); err != nil {
				return nil, fmt.Errorf("script %s: package %d: %w", s.module.ID, i, err)
			}
			p, known := byID[id]
			if !known {
				return nil, fmt.Errorf("script %s: package %d references unknown product %s", s.module.ID, i, id)
			}
			if seen[id] {
				return nil, fmt.Errorf("script %s: product %s packaged twice", s.module.ID, id)
			}
			seen[id] = true
			pkg = append(pkg, p)
		}
		out = append(out, packaging.NewPackage(pkg...))
	}

	if len(seen) != len(byID) {
		return nil, fmt.Errorf("script %s: %d of %d products left unpackaged", s.module.ID, len(byID)-len(seen), len(byID))
	}
	return out, nil
}
