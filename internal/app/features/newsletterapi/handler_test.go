package newsletterapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/domain/models"
	"github.com/proximaconf/proximacms/internal/testutil"
)

const testAPIKey = "test-api-key"

func newTestRouter(t *testing.T) (http.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	return Routes(h, testAPIKey, zap.NewNop()), db
}

func subscribe(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubscribe(t *testing.T) {
	router, db := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := subscribe(t, router, `{"email":"Ada@Example.ORG"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("subscribe = %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Success bool              `json:"success"`
		Data    models.Subscriber `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Email != "ada@example.org" {
		t.Errorf("email = %q, want normalized lowercase", env.Data.Email)
	}
	if env.Data.Status != models.SubscriberStatusSubscribed {
		t.Errorf("status = %q", env.Data.Status)
	}

	count, err := db.Collection("subscribers").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("subscribers = %d, want 1", count)
	}
}

func TestSubscribeTwiceKeepsOneRecord(t *testing.T) {
	router, db := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if rec := subscribe(t, router, `{"email":"ada@example.org"}`); rec.Code != http.StatusCreated {
		t.Fatalf("first subscribe = %d: %s", rec.Code, rec.Body.String())
	}
	// second submit is a no-op, not an error
	rec := subscribe(t, router, `{"email":" ADA@example.org "}`)
	if rec.Code != http.StatusOK && rec.Code != http.StatusCreated {
		t.Fatalf("second subscribe = %d: %s", rec.Code, rec.Body.String())
	}

	count, err := db.Collection("subscribers").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("subscribers = %d, want 1", count)
	}
}

func TestSubscribeRejectsBadEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, body := range []string{`{"email":""}`, `{"email":"not-an-email"}`, `{}`} {
		if rec := subscribe(t, router, body); rec.Code != http.StatusBadRequest {
			t.Errorf("subscribe %s = %d, want 400", body, rec.Code)
		}
	}
}

func TestUnsubscribeViaUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := subscribe(t, router, `{"email":"ada@example.org"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("subscribe = %d: %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data models.Subscriber `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/"+env.Data.ID.Hex(),
		strings.NewReader(`{"status":"unsubscribed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		Data models.Subscriber `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Data.Status != models.SubscriberStatusUnsubscribed {
		t.Errorf("status = %q", got.Data.Status)
	}
}

func TestListRequiresAPIKey(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("GET without key = %d, want 401", rec.Code)
	}
}
