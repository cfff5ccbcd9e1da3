// Package conferencesapi provides the conference management endpoints.
//
// Endpoints (mounted at /api/conferences):
//   - GET    /api/conferences      - List conferences (public)
//   - POST   /api/conferences      - Create a conference (admin)
//   - PUT    /api/conferences/{id} - Rename a conference (admin)
//   - DELETE /api/conferences/{id} - Delete a conference (admin)
package conferencesapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	conferencestore "github.com/proximaconf/proximacms/internal/app/store/conference"
	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
)

// Handler handles conference API requests.
type Handler struct {
	store  *conferencestore.Store
	logger *zap.Logger
}

// NewHandler creates a new conferencesapi handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{store: conferencestore.New(db), logger: logger}
}

// Create handles POST /api/conferences.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Name == "" {
		jsonutil.BadRequest(w, "Name is required")
		return
	}

	doc, err := h.store.Create(r.Context(), in.Name)
	if err != nil {
		h.logger.Error("failed to create conference", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusCreated, doc)
}

// List handles GET /api/conferences?q=&page=&limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := conferencestore.ListOptions{
		Query: r.URL.Query().Get("q"),
		Page:  atoi(r.URL.Query().Get("page")),
		Limit: atoi(r.URL.Query().Get("limit")),
	}

	items, _, err := h.store.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list conferences", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusOK, items)
}

// Update handles PUT /api/conferences/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	var in struct {
		Name string `json:"name"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	doc, err := h.store.Rename(r.Context(), id, in.Name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Not found")
			return
		}
		h.logger.Error("failed to update conference", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusOK, doc)
}

// Delete handles DELETE /api/conferences/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Not found")
			return
		}
		h.logger.Error("failed to delete conference", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]any{"success": true, "message": "Deleted successfully"})
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
