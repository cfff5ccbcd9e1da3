// Package sponsorsapi provides the sponsor application endpoints.
//
// Endpoints (mounted at /api/sponsors):
//   - POST   /api/sponsors      - Submit a sponsor application (public)
//   - GET    /api/sponsors      - List sponsors with conference names resolved (admin)
//   - DELETE /api/sponsors/{id} - Delete a sponsor record (admin)
package sponsorsapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	conferencestore "github.com/proximaconf/proximacms/internal/app/store/conference"
	sponsorstore "github.com/proximaconf/proximacms/internal/app/store/sponsor"
	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
)

// Handler handles sponsor API requests.
type Handler struct {
	store       *sponsorstore.Store
	conferences *conferencestore.Store
	logger      *zap.Logger
}

// NewHandler creates a new sponsorsapi handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		store:       sponsorstore.New(db),
		conferences: conferencestore.New(db),
		logger:      logger,
	}
}

// Create handles POST /api/sponsors.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title        string `json:"title"`
		Name         string `json:"name"`
		Email        string `json:"email"`
		Organization string `json:"organization"`
		Phone        string `json:"phone"`
		City         string `json:"city"`
		Country      string `json:"country"`
		ConferenceID string `json:"conferenceId"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Name == "" || in.Email == "" {
		jsonutil.BadRequest(w, "Name and email are required")
		return
	}

	input := sponsorstore.CreateInput{
		Title:        in.Title,
		Name:         in.Name,
		Email:        in.Email,
		Organization: in.Organization,
		Phone:        in.Phone,
		City:         in.City,
		Country:      in.Country,
	}
	if in.ConferenceID != "" {
		cid, err := primitive.ObjectIDFromHex(in.ConferenceID)
		if err != nil {
			jsonutil.BadRequest(w, "Invalid conference id")
			return
		}
		input.ConferenceID = &cid
	}

	doc, err := h.store.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("failed to create sponsor", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusCreated, doc)
}

// List handles GET /api/sponsors?q=&page=&limit=. Conference references are
// resolved to names in one lookup, the way the admin table displays them.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := sponsorstore.ListOptions{
		Query: r.URL.Query().Get("q"),
		Page:  atoi(r.URL.Query().Get("page")),
		Limit: atoi(r.URL.Query().Get("limit")),
	}

	items, _, err := h.store.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list sponsors", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	var ids []primitive.ObjectID
	for _, sp := range items {
		if sp.ConferenceID != nil {
			ids = append(ids, *sp.ConferenceID)
		}
	}
	names, err := h.conferences.NamesByID(r.Context(), ids)
	if err != nil {
		h.logger.Error("failed to resolve conference names", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	for i := range items {
		if items[i].ConferenceID != nil {
			items[i].ConferenceName = names[*items[i].ConferenceID]
		}
	}

	jsonutil.Data(w, http.StatusOK, items)
}

// Delete handles DELETE /api/sponsors/{id}.
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
		h.logger.Error("failed to delete sponsor", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]any{"success": true, "message": "Deleted successfully"})
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
