package ports

import "github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"

// StrategyRegistry enumerates and instantiates the available packaging
// strategies.
type StrategyRegistry interface {
	// List returns all descriptors in registry order.
	List() []packaging.Descriptor

	// Instance returns a new strategy instance for id. ok is false when the
	// id is unknown or the strategy could not be built.
	Instance(id string) (strategy packaging.Strategy, ok bool)
}
