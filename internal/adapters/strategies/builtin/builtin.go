// Package builtin provides the packaging strategies compiled into the
// service: everything in one package, one package per product, and a
// first-fit split by maximum package weight.
package builtin

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/strategies"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
)

// Strategy ids.
const (
	IDOnePackage = "one_package"
	IDPerProduct = "per_product"
	IDByWeight   = "by_weight"
)

// ErrInvalidMaxWeight is returned when the by_weight limit is not positive.
var ErrInvalidMaxWeight = errors.New("max package weight must be positive")

// Register adds the built-in strategies to r in a fixed order. maxWeight is
// the package limit used by by_weight.
func Register(r strategies.Registrar, maxWeight decimal.Decimal) error {
	if !maxWeight.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidMaxWeight, maxWeight)
	}

	entries := []struct {
		d packaging.Descriptor
		f strategies.Factory
	}{
		{
			d: packaging.Descriptor{ID: IDOnePackage, AdminLabel: "All products in one package"},
			f: func() (packaging.Strategy, error) { return OnePackage{}, nil },
		},
		{
			d: packaging.Descriptor{ID: IDPerProduct, AdminLabel: "Each product in its own package"},
			f: func() (packaging.Strategy, error) { return PerProduct{}, nil },
		},
		{
			d: packaging.Descriptor{ID: IDByWeight, AdminLabel: "Split by maximum package weight"},
			f: func() (packaging.Strategy, error) { return NewByWeight(maxWeight) },
		},
	}

	for _, e := range entries {
		if err := r.Register(e.d, e.f); err != nil {
			return fmt.Errorf("registering %s: %w", e.d.ID, err)
		}
	}
	return nil
}

// OnePackage puts every product into a single package.
type OnePackage struct{}

// PackageProducts implements packaging.Strategy.
func (OnePackage) PackageProducts(_ context.Context, products []packaging.Product) ([]packaging.Package, error) {
	if len(products) == 0 {
		return []packaging.Package{}, nil
	}
	return []packaging.Package{packaging.NewPackage(clone(products)...)}, nil
}

// PerProduct ships each product separately.
type PerProduct struct{}

// PackageProducts implements packaging.Strategy.
func (PerProduct) PackageProducts(_ context.Context, products []packaging.Product) ([]packaging.Package, error) {
	out := make([]packaging.Package, 0, len(products))
	for _, p := range products {
		out = append(out, packaging.NewPackage(p))
	}
	return out, nil
}

// ByWeight fills packages in product order and starts a new one whenever the
// next product would push the current package over MaxWeight. A product
// heavier than MaxWeight gets a package of its own.
type ByWeight struct {
	MaxWeight decimal.Decimal
}

// NewByWeight returns a ByWeight strategy limited to maxWeight.
func NewByWeight(maxWeight decimal.Decimal) (*ByWeight, error) {
	if !maxWeight.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMaxWeight, maxWeight)
	}
	return &ByWeight{MaxWeight: maxWeight}, nil
}

// PackageProducts implements packaging.Strategy.
func (b *ByWeight) PackageProducts(ctx context.Context, products []packaging.Product) ([]packaging.Package, error) {
	out := []packaging.Package{}
	var current []packaging.Product
	load := decimal.Zero

	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p.Weight.IsNegative() {
			return nil, fmt.Errorf("product %s has negative weight %s", p.ID, p.Weight)
		}
		if len(current) > 0 && load.Add(p.Weight).GreaterThan(b.MaxWeight) {
			out = append(out, packaging.NewPackage(current...))
			current = nil
			load = decimal.Zero
		}
		current = append(current, p)
		load = load.Add(p.Weight)
	}
	if len(current) > 0 {
		out = append(out, packaging.NewPackage(current...))
	}
	return out, nil
}

func clone(products []packaging.Product) []packaging.Product {
	out := make([]packaging.Product, len(products))
	copy(out, products)
	return out
}
