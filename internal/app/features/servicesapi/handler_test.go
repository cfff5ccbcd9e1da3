package servicesapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/storage"
	"go.uber.org/zap"

	"github.com/proximaconf/proximacms/internal/app/system/uploads"
	"github.com/proximaconf/proximacms/internal/domain/models"
	"github.com/proximaconf/proximacms/internal/testutil"
)

const testAPIKey = "test-api-key"

func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	db := testutil.SetupTestDB(t)

	dir := t.TempDir()
	backend, err := storage.NewLocal(storage.LocalConfig{BasePath: dir, BaseURL: "/uploads"})
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}
	up := uploads.New(backend, "/uploads", zap.NewNop())

	h := NewHandler(db, up, zap.NewNop(), 10<<20)
	return Routes(h, testAPIKey, zap.NewNop()), dir
}

func getServices(t *testing.T, router http.Handler) models.ServicePage {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d: %s", rec.Code, rec.Body.String())
	}
	var doc models.ServicePage
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode service page: %v", err)
	}
	return doc
}

func patchJSON(t *testing.T, router http.Handler, id, body string) models.ServicePage {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, "/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
	}
	var got models.ServicePage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return got
}

func TestGetCreatesDefaultDocument(t *testing.T) {
	router, _ := newTestRouter(t)

	first := getServices(t, router)
	if first.ID.IsZero() {
		t.Fatal("document has no id")
	}

	second := getServices(t, router)
	if second.ID != first.ID {
		t.Errorf("repeat GET created a new document: %s != %s", second.ID.Hex(), first.ID.Hex())
	}
}

func TestUpdateNormalizesNullPoints(t *testing.T) {
	router, _ := newTestRouter(t)
	doc := getServices(t, router)

	got := patchJSON(t, router, doc.ID.Hex(),
		`{"services":[{"title":"Catering","description":"Full service"},{"title":"AV","points":["sound","light"]}]}`)

	if len(got.Services) != 2 {
		t.Fatalf("services = %d, want 2", len(got.Services))
	}
	if got.Services[0].Points == nil {
		t.Error("omitted points stored as null, want empty list")
	}
	if len(got.Services[1].Points) != 2 {
		t.Errorf("points = %v", got.Services[1].Points)
	}
}

func TestUpdateOmittedServicesUntouched(t *testing.T) {
	router, _ := newTestRouter(t)
	doc := getServices(t, router)

	patchJSON(t, router, doc.ID.Hex(), `{"services":[{"title":"Catering"}]}`)
	got := patchJSON(t, router, doc.ID.Hex(), `{"hero":{"subtitle":"What we do"}}`)

	if got.Hero.Subtitle != "What we do" {
		t.Errorf("subtitle = %q", got.Hero.Subtitle)
	}
	if len(got.Services) != 1 || got.Services[0].Title != "Catering" {
		t.Errorf("services mutated by unrelated patch: %+v", got.Services)
	}
}

func TestUpdateReplacesServiceImageAndDeletesOld(t *testing.T) {
	router, dir := newTestRouter(t)
	doc := getServices(t, router)

	patch := func(b *testutil.MultipartBuilder) models.ServicePage {
		req := b.Request(http.MethodPatch, "/"+doc.ID.Hex())
		req.Header.Set("Authorization", "Bearer "+testAPIKey)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
		}
		var got models.ServicePage
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return got
	}

	first := patch(testutil.NewMultipart(t).
		Field("services", `[{"title":"Catering","description":"Full service"}]`).
		File("serviceImgs0", "one.jpg", []byte("image-bytes")))
	if !strings.HasPrefix(first.Services[0].Image, "/uploads/services/") {
		t.Fatalf("image = %q, want owned path", first.Services[0].Image)
	}
	if n := countFiles(t, filepath.Join(dir, "services")); n != 1 {
		t.Fatalf("stored files = %d, want 1", n)
	}

	// omitting services leaves the stored item in place, so the slot upload
	// replaces its image and reclaims the previous file
	second := patch(testutil.NewMultipart(t).
		File("serviceImgs0", "two.jpg", []byte("image-bytes")))
	if second.Services[0].Image == first.Services[0].Image {
		t.Error("service image not replaced")
	}
	if n := countFiles(t, filepath.Join(dir, "services")); n != 1 {
		t.Errorf("stored files = %d after replacement, want 1", n)
	}
}

func TestDeleteRemovesDocumentAndOwnedFiles(t *testing.T) {
	router, dir := newTestRouter(t)
	doc := getServices(t, router)

	req := testutil.NewMultipart(t).
		File("heroBg", "bg.jpg", []byte("image-bytes")).
		Request(http.MethodPatch, "/"+doc.ID.Hex())
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
	}

	del := httptest.NewRequest(http.MethodDelete, "/"+doc.ID.Hex(), nil)
	del.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, del)
	if rec.Code != http.StatusOK {
		t.Fatalf("DELETE = %d: %s", rec.Code, rec.Body.String())
	}

	if n := countFiles(t, filepath.Join(dir, "services")); n != 0 {
		t.Errorf("stored files = %d after delete, want 0", n)
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0
	}
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() {
			n++
		}
	}
	return n
}
