// Package galleryapi provides the gallery page content endpoints.
//
// Endpoints (mounted at /api/gallery):
//   - GET    /api/gallery      - Fetch the gallery page (creates a default if none)
//   - POST   /api/gallery      - Create the gallery page from a payload
//   - PATCH  /api/gallery/{id} - Partially update the gallery page
//   - DELETE /api/gallery/{id} - Delete the page and its owned upload files
//
// Event image lists are append-only during upload: new files join the list,
// and images the client removed from the payload are reclaimed by diffing
// the owned-path set before and after the whole mutation.
package galleryapi

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

// CollectionName is the MongoDB collection for gallery page documents.
const CollectionName = "gallery_pages"

// Handler handles gallery page API requests.
type Handler struct {
	store    *content.Store[*models.GalleryPage]
	uploads  *uploads.Store
	logger   *zap.Logger
	maxBytes int64
}

// NewHandler creates a new galleryapi handler.
func NewHandler(db *mongo.Database, up *uploads.Store, logger *zap.Logger, maxBytes int64) *Handler {
	return &Handler{
		store:    content.New(db, CollectionName, models.NewGalleryPage),
		uploads:  up,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// Get handles GET /api/gallery.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindSingleton(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch gallery page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Create handles POST /api/gallery.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p payload
	files, err := reconcile.DecodePayload(w, r, h.maxBytes, &p)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid payload")
		return
	}

	doc := models.NewGalleryPage()
	p.apply(doc)
	if err := applyFiles(r.Context(), h.uploads, doc, files); err != nil {
		h.logger.Error("failed to store gallery uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save gallery page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Created(w, doc)
}

// Update handles PATCH /api/gallery/{id}. Owned paths referenced before the
// mutation but not after it are best-effort deleted.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "Gallery doc not found")
			return
		}
		h.logger.Error("failed to fetch gallery page", zap.Error(err))
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
		h.logger.Error("failed to store gallery uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteOrphans(r.Context(), h.uploads, before, collectPaths(doc))

	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save gallery page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Delete handles DELETE /api/gallery/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "Gallery doc not found")
			return
		}
		h.logger.Error("failed to fetch gallery page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteAll(r.Context(), h.uploads, collectPaths(doc))

	if err := h.store.DeleteByID(r.Context(), id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.logger.Error("failed to delete gallery page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]string{"message": "Gallery deleted"})
}
