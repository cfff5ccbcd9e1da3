// Package health provides health check endpoints for monitoring and load
// balancers.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
)

// Handler serves the health endpoints.
type Handler struct {
	client *mongo.Client
}

// Routes mounts the health endpoints on r.
func Routes(r chi.Router, client *mongo.Client) {
	h := &Handler{client: client}
	r.Get("/health", h.Check)
	r.Get("/health/live", h.Live)
	r.Get("/health/ready", h.Ready)
}

// Check reports overall health including database connectivity.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	dbStatus := "ok"
	code := http.StatusOK

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		status = "degraded"
		dbStatus = "unreachable"
		code = http.StatusServiceUnavailable
	}

	jsonutil.JSON(w, code, map[string]any{
		"status":   status,
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// Live reports process liveness. It never touches dependencies.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, map[string]string{"status": "ok"})
}

// Ready reports readiness to accept traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		jsonutil.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	jsonutil.OK(w, map[string]string{"status": "ready"})
}
