package ports

import (
	"context"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
)

// PackagingDebugService defines the service port for the packaging debug
// workflow. Implemented by the application layer; called by the HTTP handlers
// and the CLI.
type PackagingDebugService interface {
	// ListStrategies returns the registry descriptors in registry order.
	ListStrategies(ctx context.Context) ([]packaging.Descriptor, error)

	// RenderSelectionForm builds the strategy selection form. The default
	// selection is the persisted strategy, or the first registry entry when
	// nothing is persisted.
	// Returns a *domain.PersistenceError if the settings store cannot be read.
	RenderSelectionForm(ctx context.Context) (*packaging.SelectionForm, error)

	// SubmitSelection validates input against the registry and, when valid,
	// applies it. Returns domain.ErrValidation for an empty or unknown id;
	// nothing is persisted in that case.
	SubmitSelection(ctx context.Context, input SelectionInput) (*packaging.InvocationReport, error)

	// ApplySelection persists id, instantiates the strategy and runs it
	// against two fresh sample products. The id is persisted even when the
	// later steps fail.
	// Returns a *domain.PersistenceError if persisting fails,
	// *domain.UnknownStrategyError if the registry has no such strategy, or
	// *domain.StrategyExecutionError if the strategy fails.
	ApplySelection(ctx context.Context, id string) (*packaging.InvocationReport, error)
}

// SelectionInput holds the typed values submitted with the selection form.
type SelectionInput struct {
	StrategyID string
}
