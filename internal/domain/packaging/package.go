package packaging

import "github.com/shopspring/decimal"

// Package is one shipment produced by a strategy.
type Package struct {
	Products []Product
}

// NewPackage groups the given products into a package.
func NewPackage(products ...Product) Package {
	return Package{Products: products}
}

// Weight returns the sum of the product weights.
func (p Package) Weight() decimal.Decimal {
	total := decimal.Zero
	for _, prod := range p.Products {
		total = total.Add(prod.Weight)
	}
	return total
}

// Price returns the sum of the product prices.
func (p Package) Price() decimal.Decimal {
	total := decimal.Zero
	for _, prod := range p.Products {
		total = total.Add(prod.Price)
	}
	return total
}
