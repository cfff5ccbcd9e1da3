package reconcile

import (
	"net/http"
	"testing"

	"github.com/proximaconf/proximacms/internal/testutil"
)

func TestDecodePayloadMultipart(t *testing.T) {
	req := testutil.NewMultipart(t).
		Field("hero", `{"title":"Our Gallery"}`).
		Field("tags", `["2024","2025"]`).
		File("eventImgs0_0", "a.jpg", []byte("jpegdata")).
		File("eventImgs0_0", "b.jpg", []byte("jpegdata")).
		Request(http.MethodPatch, "/")
	rec := newRecorder()

	var p testPayload
	files, err := DecodePayload(rec, req, 1<<20, &p)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}

	if p.Hero == nil || *p.Hero.Title != "Our Gallery" {
		t.Errorf("hero = %+v", p.Hero)
	}
	if len(p.Tags) != 2 {
		t.Errorf("tags = %v", p.Tags)
	}
	if got := len(files.All("eventImgs0_0")); got != 2 {
		t.Errorf("slot files = %d, want 2", got)
	}
}
