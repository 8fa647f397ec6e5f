package packaging

import (
	"context"
	"errors"
)

// ErrNoStrategy is returned by Context.PackageProducts when no strategy has
// been bound.
var ErrNoStrategy = errors.New("packaging: no strategy bound to context")

// Descriptor is the registry metadata for one available strategy.
type Descriptor struct {
	ID         string
	AdminLabel string
}

// Strategy decides how products are grouped into packages.
type Strategy interface {
	PackageProducts(ctx context.Context, products []Product) ([]Package, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(ctx context.Context, products []Product) ([]Package, error)

// PackageProducts calls f.
func (f StrategyFunc) PackageProducts(ctx context.Context, products []Product) ([]Package, error) {
	return f(ctx, products)
}

// Context binds one Strategy instance to the packaging operation. A Context
// is transient: build a new one for each invocation.
type Context struct {
	strategy Strategy
}

// NewContext returns a Context with no strategy bound.
func NewContext() *Context {
	return &Context{}
}

// SetStrategy binds s, replacing any previously bound strategy.
func (c *Context) SetStrategy(s Strategy) {
	c.strategy = s
}

// PackageProducts runs the bound strategy against products.
func (c *Context) PackageProducts(ctx context.Context, products []Product) ([]Package, error) {
	if c.strategy == nil {
		return nil, ErrNoStrategy
	}
	return c.strategy.PackageProducts(ctx, products)
}
