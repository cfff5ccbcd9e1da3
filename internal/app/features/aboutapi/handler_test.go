package aboutapi

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

func getAbout(t *testing.T, router http.Handler) models.AboutPage {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d: %s", rec.Code, rec.Body.String())
	}
	var doc models.AboutPage
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode about page: %v", err)
	}
	return doc
}

func TestGetCreatesDefaultDocument(t *testing.T) {
	router, _ := newTestRouter(t)

	first := getAbout(t, router)
	if first.ID.IsZero() {
		t.Fatal("document has no id")
	}
	if first.Hero.Title == "" {
		t.Error("default hero title missing")
	}

	second := getAbout(t, router)
	if second.ID != first.ID {
		t.Errorf("repeat GET created a new document: %s != %s", second.ID.Hex(), first.ID.Hex())
	}
}

func TestUpdateMergesScalarsAndKeepsRest(t *testing.T) {
	router, _ := newTestRouter(t)
	doc := getAbout(t, router)

	req := httptest.NewRequest(http.MethodPatch, "/"+doc.ID.Hex(),
		strings.NewReader(`{"hero":{"subtitle":"Who we are"},"counters":[{"title":"Editions","number":"12"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
	}

	var got models.AboutPage
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Hero.Subtitle != "Who we are" {
		t.Errorf("subtitle = %q", got.Hero.Subtitle)
	}
	if got.Hero.Title != doc.Hero.Title {
		t.Errorf("absent scalar changed: %q -> %q", doc.Hero.Title, got.Hero.Title)
	}
	if len(got.Counters) != 1 || got.Counters[0].Number != "12" {
		t.Errorf("counters = %+v", got.Counters)
	}
}

func TestUpdateReplacesSectionImageAndDeletesOld(t *testing.T) {
	router, dir := newTestRouter(t)
	doc := getAbout(t, router)

	patch := func(b *testutil.MultipartBuilder) models.AboutPage {
		req := b.Request(http.MethodPatch, "/"+doc.ID.Hex())
		req.Header.Set("Authorization", "Bearer "+testAPIKey)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("PATCH = %d: %s", rec.Code, rec.Body.String())
		}
		var got models.AboutPage
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return got
	}

	first := patch(testutil.NewMultipart(t).
		Field("contentSections", `[{"heading":"History","description":"Since 2014"}]`).
		File("sectionImgs0", "one.jpg", []byte("image-bytes")))
	if !strings.HasPrefix(first.Sections[0].Image, "/uploads/about/") {
		t.Fatalf("image = %q, want owned path", first.Sections[0].Image)
	}
	if n := countFiles(t, filepath.Join(dir, "about")); n != 1 {
		t.Fatalf("stored files = %d, want 1", n)
	}

	// omitting contentSections leaves the stored section in place, so the
	// slot upload replaces its image and reclaims the previous file
	second := patch(testutil.NewMultipart(t).
		File("sectionImgs0", "two.jpg", []byte("image-bytes")))
	if second.Sections[0].Image == first.Sections[0].Image {
		t.Error("section image not replaced")
	}
	if n := countFiles(t, filepath.Join(dir, "about")); n != 1 {
		t.Errorf("stored files = %d after replacement, want 1", n)
	}
}

func TestDeleteRemovesDocumentAndOwnedFiles(t *testing.T) {
	router, dir := newTestRouter(t)
	doc := getAbout(t, router)

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

	if n := countFiles(t, filepath.Join(dir, "about")); n != 0 {
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
