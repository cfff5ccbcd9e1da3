// Package upcomingapi provides the upcoming events page content endpoints.
//
// Endpoints (mounted at /api/upcoming):
//   - GET    /api/upcoming      - Fetch the page (creates a default if none)
//   - POST   /api/upcoming      - Upsert the singleton page from a payload
//   - PATCH  /api/upcoming/{id} - Partially update the page
//   - DELETE /api/upcoming/{id} - Delete the page and its owned upload files
//
// Unlike the other pages, POST here targets the existing singleton when one
// exists instead of creating a second document.
package upcomingapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/store/content"
	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
	"github.com/proximaconf/proximacms/internal/app/system/reconcile"
	"github.com/proximaconf/proximacms/internal/app/system/uploads"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// CollectionName is the MongoDB collection for upcoming events page documents.
const CollectionName = "upcoming_pages"

// Handler handles upcoming events page API requests.
type Handler struct {
	store    *content.Store[*models.UpcomingPage]
	uploads  *uploads.Store
	logger   *zap.Logger
	maxBytes int64
}

// NewHandler creates a new upcomingapi handler.
func NewHandler(db *mongo.Database, up *uploads.Store, logger *zap.Logger, maxBytes int64) *Handler {
	return &Handler{
		store:    content.New(db, CollectionName, models.NewUpcomingPage),
		uploads:  up,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// Get handles GET /api/upcoming.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindSingleton(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Create handles POST /api/upcoming. The payload is applied to the existing
// singleton when one exists.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindSingleton(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	var p payload
	files, err := reconcile.DecodePayload(w, r, h.maxBytes, &p)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid payload")
		return
	}

	before := collectPaths(doc)

	p.apply(doc)
	if err := applyFiles(r.Context(), h.uploads, doc, files); err != nil {
		h.logger.Error("failed to store upcoming uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteOrphans(r.Context(), h.uploads, before, collectPaths(doc))

	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Created(w, doc)
}

// Update handles PATCH /api/upcoming/{id}. Owned paths referenced before
// the mutation but not after it are best-effort deleted.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "Upcoming doc not found")
			return
		}
		h.logger.Error("failed to fetch upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	before := collectPaths(doc)

	var p payload
	files, err := reconcile.DecodePayload(w, r, h.maxBytes, &p)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid payload")
		return
	}

	p.apply(doc)
	if err := applyFiles(r.Context(), h.uploads, doc, files); err != nil {
		h.logger.Error("failed to store upcoming uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteOrphans(r.Context(), h.uploads, before, collectPaths(doc))

	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Delete handles DELETE /api/upcoming/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "Upcoming doc not found")
			return
		}
		h.logger.Error("failed to fetch upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteAll(r.Context(), h.uploads, collectPaths(doc))

	if err := h.store.DeleteByID(r.Context(), id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.logger.Error("failed to delete upcoming page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]string{"message": "Upcoming deleted"})
}
