package packaging

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item handed to a packaging strategy. The debug
// workflow only ever builds empty products; every instance still carries a
// unique ID so strategies and reports can tell them apart.
type Product struct {
	ID     uuid.UUID
	SKU    string
	Weight decimal.Decimal
	Price  decimal.Decimal
}

// NewProduct returns an empty product with a freshly generated ID.
func NewProduct() Product {
	return Product{ID: uuid.New()}
}

// SampleProducts returns the fixed debug input: two newly constructed empty
// products. Each call allocates new instances.
func SampleProducts() []Product {
	return []Product{NewProduct(), NewProduct()}
}
