// Package newsletterapi provides the newsletter subscription endpoints.
//
// Endpoints (mounted at /api/newsletter):
//   - POST   /api/newsletter/subscribe - Subscribe an email (public, idempotent)
//   - GET    /api/newsletter           - List subscribers with filters (admin)
//   - PATCH  /api/newsletter/{id}      - Update status/note (admin)
//   - DELETE /api/newsletter/{id}      - Delete a subscriber (admin)
//
// Subscribing the same email twice never creates a second record: the store
// upserts on the unique email index, and a duplicate-key race is reported
// back as "already subscribed".
package newsletterapi

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/store/storeutil"
	subscriberstore "github.com/proximaconf/proximacms/internal/app/store/subscriber"
	"github.com/proximaconf/proximacms/internal/app/system/htmlsanitize"
	"github.com/proximaconf/proximacms/internal/app/system/jsonutil"
	"github.com/proximaconf/proximacms/internal/app/system/requestinfo"
	"github.com/proximaconf/proximacms/internal/domain/models"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Handler handles newsletter API requests.
type Handler struct {
	store  *subscriberstore.Store
	logger *zap.Logger
}

// NewHandler creates a new newsletterapi handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{store: subscriberstore.New(db), logger: logger}
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email string `json:"email"`
	}
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	email := subscriberstore.NormalizeEmail(in.Email)
	if !emailRe.MatchString(email) {
		jsonutil.BadRequest(w, "Valid email required")
		return
	}

	doc, err := h.store.Subscribe(r.Context(), subscriberstore.SubscribeInput{
		Email:     email,
		Source:    "site",
		IP:        requestinfo.ClientIP(r),
		UserAgent: requestinfo.UserAgent(r),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			jsonutil.OK(w, map[string]any{"success": true, "message": "Already subscribed"})
			return
		}
		h.logger.Error("failed to subscribe", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusCreated, doc)
}

// List handles GET /api/newsletter?q=&status=&from=&to=&page=1&limit=20.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	opts := subscriberstore.ListOptions{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		From:   parseDate(r.URL.Query().Get("from")),
		To:     parseDate(r.URL.Query().Get("to")),
		Page:   atoi(r.URL.Query().Get("page")),
		Limit:  atoi(r.URL.Query().Get("limit")),
	}

	items, total, err := h.store.List(r.Context(), opts)
	if err != nil {
		h.logger.Error("failed to list subscribers", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}

	page, limit := storeutil.ClampPage(opts.Page, opts.Limit, subscriberstore.MaxLimit)
	jsonutil.List(w, items, page, limit, total, storeutil.Pages(total, limit))
}

// Update handles PATCH /api/newsletter/{id}. Only status and note are
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
	if in.Status != nil && !models.ValidSubscriberStatus(*in.Status) {
		in.Status = nil
	}
	if in.Note != nil {
		clean := htmlsanitize.Sanitize(*in.Note)
		in.Note = &clean
	}

	doc, err := h.store.Update(r.Context(), id, subscriberstore.UpdateInput{Status: in.Status, Note: in.Note})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Not found")
			return
		}
		h.logger.Error("failed to update subscriber", zap.Error(err))
		jsonutil.InternalError(w, "Server error")
		return
	}
	jsonutil.Data(w, http.StatusOK, doc)
}

// Delete handles DELETE /api/newsletter/{id}.
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
		h.logger.Error("failed to delete subscriber", zap.Error(err))
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
