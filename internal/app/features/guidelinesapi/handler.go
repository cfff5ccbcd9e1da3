// Package guidelinesapi provides the speaker guidelines endpoints.
//
// Endpoints (mounted at /api/guidelines):
//   - GET  /api/guidelines - Fetch the guideline document (data is null if none)
//   - POST /api/guidelines - Create or update the single guideline document
//
// Guideline content is rich text authored in the admin editor; it is
// sanitized before it reaches the database.
package guidelinesapi

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	guidelinestore "github.com/proximaconf/proximacms/internal/app/store/guideline"
	"github.com/proximaconf/proximacms/internal/app/system/htmlsanitize"
	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
)

// Handler handles guideline API requests.
type Handler struct {
	store  *guidelinestore.Store
	logger *zap.Logger
}

// NewHandler creates a new guidelinesapi handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{store: guidelinestore.New(db), logger: logger}
}

// Get handles GET /api/guidelines. Unlike the page endpoints there is no
// lazy creation: data is null until an admin saves content.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch guideline", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to fetch guideline")
		return
	}
	if doc == nil {
		jsonutil.OK(w, map[string]any{"success": true, "data": nil})
		return
	}
	jsonutil.Data(w, http.StatusOK, doc)
}

// Save handles POST /api/guidelines. Creates the document on first save,
// overwrites it afterwards.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Speaker string `json:"speaker"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	doc, err := h.store.Save(r.Context(), htmlsanitize.Sanitize(in.Speaker))
	if err != nil {
		h.logger.Error("failed to save guideline", zap.Error(err))
		jsonutil.Error(w, http.StatusInternalServerError, "Failed to save guideline")
		return
	}
	jsonutil.Data(w, http.StatusOK, doc)
}
