// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// PackagingHandler handles HTTP requests for the packaging strategy debug
// workflow.
type PackagingHandler struct {
	svc ports.PackagingDebugService
}

// NewPackagingHandler creates a new PackagingHandler with the given service port.
func NewPackagingHandler(svc ports.PackagingDebugService) *PackagingHandler {
	return &PackagingHandler{svc: svc}
}

// Strategies handles GET /api/v1/packaging/strategies.
func (h *PackagingHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	descriptors, err := h.svc.ListStrategies(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDescriptorListResponse(descriptors))
}

// Form handles GET /api/v1/packaging/debug.
func (h *PackagingHandler) Form(w http.ResponseWriter, r *http.Request) {
	form, err := h.svc.RenderSelectionForm(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFormResponse(form))
}

// Submit handles POST /api/v1/packaging/debug.
func (h *PackagingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectStrategyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.svc.SubmitSelection(r.Context(), req.ToSelectionInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToReportResponse(report))
}
