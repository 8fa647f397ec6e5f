package dto

import (
	"strings"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

const msgRequired = "is required"

// SelectStrategyRequest represents the JSON body submitted by the packaging
// debug form.
type SelectStrategyRequest struct {
	PackagingStrategy string `json:"packaging_strategy"`
}

// Validate checks that a strategy id was submitted.
// Returns a *domain.ValidationError if it is missing. Whether the id exists
// in the registry is checked by the service.
func (r *SelectStrategyRequest) Validate() error {
	if strings.TrimSpace(r.PackagingStrategy) == "" {
		return &domain.ValidationError{Fields: map[string]string{
			packaging.FieldStrategy: msgRequired,
		}}
	}
	return nil
}

// ToSelectionInput converts the request to the service input.
func (r *SelectStrategyRequest) ToSelectionInput() ports.SelectionInput {
	return ports.SelectionInput{StrategyID: strings.TrimSpace(r.PackagingStrategy)}
}
