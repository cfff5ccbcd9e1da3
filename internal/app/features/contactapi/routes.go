package contactapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/system/auth"
)

// Routes returns a router with the contact message endpoints.
//
// The submission endpoint is public (it backs the site contact form);
// everything else is admin-only.
func Routes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.APIKeyAuth(apiKey, logger))
		pr.Get("/", h.List)
		pr.Get("/{id}", h.Get)
		pr.Patch("/{id}", h.Update)
		pr.Delete("/{id}", h.Delete)
	})

	return r
}
