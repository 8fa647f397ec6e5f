// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain"
)

var errMethodNotAllowed = errors.New("method not allowed")

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Packaging *handlers.PackagingHandler
	Messages  *handlers.MessagesHandler
	Health    *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. submitLimit, when
// non-nil, wraps only the strategy submission route.
func NewRouter(
	h Handlers,
	submitLimit func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		resp := dto.NewErrorResponse(req, errMethodNotAllowed)
		resp.Status = http.StatusMethodNotAllowed
		resp.Title = http.StatusText(http.StatusMethodNotAllowed)
		dto.WriteProblem(w, req, resp)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/packaging/strategies", h.Packaging.Strategies)
		r.Get("/packaging/debug", h.Packaging.Form)

		submit := r
		if submitLimit != nil {
			submit = r.With(submitLimit)
		}
		submit.Post("/packaging/debug", h.Packaging.Submit)

		r.Get("/messages", h.Messages.List)
	})

	return r
}
