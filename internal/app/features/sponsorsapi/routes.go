package sponsorsapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/system/auth"
)

// Routes returns a router with the sponsor endpoints.
//
// The application form posts publicly; listing and deletion are admin-only.
func Routes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.APIKeyAuth(apiKey, logger))
		pr.Get("/", h.List)
		pr.Delete("/{id}", h.Delete)
	})

	return r
}
