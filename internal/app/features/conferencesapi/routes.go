package conferencesapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/system/auth"
)

// Routes returns a router with the conference endpoints.
//
// The listing is public (the sponsor form on the site needs it);
// mutations require the admin API key.
func Routes(h *Handler, apiKey string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.APIKeyAuth(apiKey, logger))
		pr.Post("/", h.Create)
		pr.Put("/{id}", h.Update)
		pr.Delete("/{id}", h.Delete)
	})

	return r
}
