// Package contactapi provides the contact-form endpoints.
//
// Endpoints (mounted at /api/contact):
//   - POST   /api/contact      - Submit a contact message (public)
//   - GET    /api/contact      - List messages with filters (admin)
//   - GET    /api/contact/{id} - Fetch one message (admin)
//   - PATCH  /api/contact/{id} - Update status/note (admin)
//   - DELETE /api/contact/{id} - Delete a message (admin)
package contactapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	contactstore "github.com/proximaconf/proximacms/internal/app/store/contact"
	"github.com/proximaconf/proximacms/internal/app/store/storeutil"
	"github.com/proximaconf/proximacms/internal/app/system/htmlsanitize"
	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
	"github.com/proximaconf/proximacms/internal/app/system/requestinfo"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

// Handler handles contact message API requests.
type Handler struct {
	store  *contactstore.Store
	logger *zap.Logger
}

// NewHandler creates a new contactapi handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{store: contactstore.New(db), logger: logger}
}

// Create handles POST /api/contact. Public: this is the site contact form.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Name == "" || in.Email == "" {
		jsonutil.BadRequest(w, "Name and email are required.")
		return
	}

	doc, err := h.store.Create(r.Context(), contactstore.CreateInput{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		IP:        requestinfo.ClientIP(r),
		UserAgent: requestinfo.UserAgent(r),
	})
	if err != nil {
		h.logger.Error("failed to record contact message", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusCreated, doc)
}

// List handles GET /api/contact?q=&status=&from=&to=&page=1&limit=20.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := contactstore.ListOptions{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		From:   parseDate(r.URL.Query().Get("from")),
		To:     parseDate(r.URL.Query().Get("to")),
		Page:   atoi(r.URL.Query().Get("page")),
		Limit:  atoi(r.URL.Query().Get("limit")),
	}

	items, total, err := h.store.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list contact messages", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	page, limit := storeutil.ClampPage(opts.Page, opts.Limit, contactstore.MaxLimit)
	jsonutil.List(w, items, page, limit, total, storeutil.Pages(total, limit))
}

// Get handles GET /api/contact/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	doc, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Not found")
			return
		}
		h.logger.Error("failed to fetch contact message", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusOK, doc)
}

// Update handles PATCH /api/contact/{id}. Only status and note are
// editable; an unknown status value is ignored.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.BadRequest(w, "Invalid id")
		return
	}

	var in struct {
		Status *string `json:"status"`
		Note   *string `json:"note"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Status != nil && !models.ValidContactStatus(*in.Status) {
		in.Status = nil
	}
	if in.Note != nil {
		clean := htmlsanitize.Sanitize(*in.Note)
		in.Note = &clean
	}

	doc, err := h.store.Update(r.Context(), id, contactstore.UpdateInput{Status: in.Status, Note: in.Note})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Not found")
			return
		}
		h.logger.Error("failed to update contact message", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusOK, doc)
}

// Delete handles DELETE /api/contact/{id}.
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
		h.logger.Error("failed to delete contact message", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.OK(w, map[string]any{"success": true, "message": "Deleted"})
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// parseDate accepts RFC 3339 timestamps or plain dates ("2026-08-28").
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
