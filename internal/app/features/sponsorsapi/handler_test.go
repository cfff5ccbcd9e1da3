package sponsorsapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	conferencestore "github.com/proximaconf/proximacms/internal/app/store/conference"
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

func TestCreateIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"title":"Dr","name":"Ada","email":"ada@example.org","organization":"ACME"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST = %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Success bool           `json:"success"`
		Data    models.Sponsor `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.ID.IsZero() || env.Data.Name != "Ada" {
		t.Errorf("sponsor = %+v", env.Data)
	}
	if env.Data.ConferenceID != nil {
		t.Errorf("conference id = %v, want nil", env.Data.ConferenceID)
	}
}

func TestCreateRequiresNameAndEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"organization":"ACME"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST = %d, want 400", rec.Code)
	}
}

func TestCreateRejectsMalformedConferenceID(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"Ada","email":"ada@example.org","conferenceId":"not-hex"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST = %d, want 400", rec.Code)
	}
}

func TestListResolvesConferenceNames(t *testing.T) {
	router, db := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	conf, err := conferencestore.New(db).Create(ctx, "ProximaConf 2026")
	if err != nil {
		t.Fatalf("seed conference: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"Ada","email":"ada@example.org","conferenceId":"`+conf.ID.Hex()+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST = %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET = %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data []models.Sponsor `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data) != 1 {
		t.Fatalf("sponsors = %d, want 1", len(env.Data))
	}
	if env.Data[0].ConferenceName != "ProximaConf 2026" {
		t.Errorf("conference name = %q", env.Data[0].ConferenceName)
	}
}

func TestDelete(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"name":"Ada","email":"ada@example.org"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST = %d: %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data models.Sponsor `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}

	del := httptest.NewRequest(http.MethodDelete, "/"+env.Data.ID.Hex(), nil)
	del.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, del)
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE = %d: %s", rec.Code, rec.Body.String())
	}

	del = httptest.NewRequest(http.MethodDelete, "/"+env.Data.ID.Hex(), nil)
	del.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, del)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second DELETE = %d, want 404", rec.Code)
	}
}
