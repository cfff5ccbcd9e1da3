// Package homeapi provides the home page content endpoints.
//
// Endpoints (mounted at /api/home):
//   - GET    /api/home      - Fetch the home page (creates a default if none)
//   - POST   /api/home      - Create the home page from a payload
//   - PATCH  /api/home/{id} - Partially update the home page
//   - DELETE /api/home/{id} - Delete the page and its owned upload files
//
// Mutations accept plain JSON or multipart/form-data with JSON-stringified
// fields plus upload slots.
package homeapi

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

// CollectionName is the MongoDB collection for home page documents.
const CollectionName = "home_pages"

// Handler handles home page API requests.
type Handler struct {
	store    *content.Store[*models.HomePage]
	uploads  *uploads.Store
	logger   *zap.Logger
	maxBytes int64
}

// NewHandler creates a new homeapi handler.
func NewHandler(db *mongo.Database, up *uploads.Store, logger *zap.Logger, maxBytes int64) *Handler {
	return &Handler{
		store:    content.New(db, CollectionName, models.NewHomePage),
		uploads:  up,
		logger:   logger,
		maxBytes: maxBytes,
	}
}

// Get handles GET /api/home. Creates and returns a default document when
// none exists, so the endpoint never 404s.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.FindSingleton(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch home page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Create handles POST /api/home.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p payload
	files, err := reconcile.DecodePayload(w, r, h.maxBytes, &p)
	if err != nil {
		jsonutil.BadRequest(w, "Invalid payload")
		return
	}

	doc := models.NewHomePage()
	p.apply(doc)
	if err := applyFiles(r.Context(), h.uploads, doc, files); err != nil {
		h.logger.Error("failed to store home page uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save home page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Created(w, doc)
}

// Update handles PATCH /api/home/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "Home not found")
			return
		}
		h.logger.Error("failed to fetch home page", zap.Error(err))
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
		h.logger.Error("failed to store home page uploads", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	if err := h.store.Save(r.Context(), doc); err != nil {
		h.logger.Error("failed to save home page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, doc)
}

// Delete handles DELETE /api/home/{id}. Owned upload files referenced by the
// document are best-effort deleted along with it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			jsonutil.NotFound(w, "Home not found")
			return
		}
		h.logger.Error("failed to fetch home page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	reconcile.DeleteAll(r.Context(), h.uploads, collectPaths(doc))

	if err := h.store.DeleteByID(r.Context(), id); err != nil && !errors.Is(err, content.ErrNotFound) {
		h.logger.Error("failed to delete home page", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]string{"message": "Home deleted"})
}
