package homeapi

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

func getHome(t *testing.T, router http.Handler) models.HomePage {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d: %s", rec.Code, rec.Body.String())
	}
	var doc models.HomePage
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode home page: %v", err)
	}
	return doc
}

func TestGetCreatesDefaultDocument(t *testing.T) {
	router, _ := newTestRouter(t)

	first := getHome(t, router)
	if first.ID.IsZero() {
		t.Fatal("document has no id")
	}
	if first.Hero.Heading == "" {
		t.Error("default hero heading missing")
	}

	second := getHome(t, router)
	if second.ID != first.ID {
		t.Errorf("repeat GET created a new document: %s != %s", second.ID.Hex(), first.ID.Hex())
	}
}

func TestUpdateMergesScalarsAndKeepsRest(t *testing.T) {
	router, _ := newTestRouter(t)
	doc := getHome(t, router)

	req := testutil.NewMultipart(t).
		Field("hero", `{"heading":"New Heading"}`).
		Request(http.MethodPatch, "/"+doc.ID.Hex())
	req.Header.Set("Authorization", "Bearer "+testAPIKey)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
	}

	var got models.HomePage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Hero.Heading != "New Heading" {
		t.Errorf("heading = %q", got.Hero.Heading)
	}
	if got.Hero.ButtonText != doc.Hero.ButtonText {
		t.Errorf("absent scalar changed: %q -> %q", doc.Hero.ButtonText, got.Hero.ButtonText)
	}
}

func TestUpdateReplacesSustainImageAndDeletesOld(t *testing.T) {
	router, dir := newTestRouter(t)
	doc := getHome(t, router)

	patch := func(filename string) models.HomePage {
		req := testutil.NewMultipart(t).
			File("sustainImage", filename, []byte("image-bytes")).
			Request(http.MethodPatch, "/"+doc.ID.Hex())
		req.Header.Set("Authorization", "Bearer "+testAPIKey)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
		}
		var got models.HomePage
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return got
	}

	first := patch("one.jpg")
	if !strings.HasPrefix(first.Sustainable.Image, "/uploads/home/") {
		t.Fatalf("image = %q, want owned path", first.Sustainable.Image)
	}
	if n := countFiles(t, filepath.Join(dir, "home")); n != 1 {
		t.Fatalf("stored files = %d, want 1", n)
	}

	second := patch("two.jpg")
	if second.Sustainable.Image == first.Sustainable.Image {
		t.Error("image path not replaced")
	}
	// the replaced upload must be gone from storage
	if n := countFiles(t, filepath.Join(dir, "home")); n != 1 {
		t.Errorf("stored files = %d after replacement, want 1", n)
	}
}

func TestDeleteRemovesDocumentAndOwnedFiles(t *testing.T) {
	router, dir := newTestRouter(t)
	doc := getHome(t, router)

	req := testutil.NewMultipart(t).
		File("sustainImage", "img.jpg", []byte("image-bytes")).
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

	if n := countFiles(t, filepath.Join(dir, "home")); n != 0 {
		t.Errorf("stored files = %d after delete, want 0", n)
	}

	// next GET lazily creates a fresh default document
	fresh := getHome(t, router)
	if fresh.ID == doc.ID {
		t.Error("deleted document still returned")
	}
}

func TestMutationsRequireAPIKey(t *testing.T) {
	router, _ := newTestRouter(t)
	doc := getHome(t, router)

	req := httptest.NewRequest(http.MethodPatch, "/"+doc.ID.Hex(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("PATCH without key = %d, want 401", rec.Code)
	}
}

func TestUpdateUnknownIDReturns404(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPatch, "/64b000000000000000000000", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("PATCH unknown id = %d, want 404", rec.Code)
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
