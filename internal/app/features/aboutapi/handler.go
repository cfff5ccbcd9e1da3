// Package aboutapi provides the about page content endpoints.
//
// Endpoints (mounted at /api/aboutus):
//   - GET    /api/aboutus      - Fetch the about page (creates a default if none)
//   - POST   /api/aboutus      - Create the about page from a payload
//   - PATCH  /api/aboutus/{id} - Partially update the about page
//   - DELETE /api/aboutus/{id} - Delete the page and its owned upload files
package aboutapi

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

// CollectionName is the MongoDB collection for about page documents.
const CollectionName = "about_pages"

// Handler handles about page API requests.
type Handler struct {
	store    *content.Store[*models.AboutPage]
	uploads  *uploads.Store
	logger   *zap.Logger
	maxBytes int64
}

// NewHandler creates a new aboutapi handler.
func NewHandler(db *mongo.Database, up *uploads.Store, logger *zap.Logger, maxBytes int64) *Handler {
	return &Handler{
		store:    content.New(db, CollectionName, models.NewAboutPage),
		uploads:  up,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// Get handles GET /api/aboutus.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindSingleton(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch about page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Create handles POST /api/aboutus.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p payload
	files, err := reconcile.DecodePayload(w, r, h.maxBytes, &p)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid payload")
		return
	}

	doc := models.NewAboutPage()
	p.apply(doc)
	if err := applyFiles(r.Context(), h.uploads, doc, files); err != nil {
		h.logger.Error("failed to store about page uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save about page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Created(w, doc)
}

// Update handles PATCH /api/aboutus/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "About not found")
			return
		}
		h.logger.Error("failed to fetch about page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	var p payload
	files, err := reconcile.DecodePayload(w, r, h.maxBytes, &p)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid payload")
		return
	}

	p.apply(doc)
	if err := applyFiles(r.Context(), h.uploads, doc, files); err != nil {
		h.logger.Error("failed to store about page uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save about page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Delete handles DELETE /api/aboutus/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "About not found")
			return
		}
		h.logger.Error("failed to fetch about page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteAll(r.Context(), h.uploads, collectPaths(doc))

	if err := h.store.DeleteByID(r.Context(), id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.logger.Error("failed to delete about page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]string{"message": "About deleted"})
}
