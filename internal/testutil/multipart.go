package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

// MultipartBuilder assembles multipart/form-data request bodies the way the
// admin UI submits them: JSON-stringified fields plus file parts keyed by
// upload slot.
type MultipartBuilder struct {
	t   *testing.T
	buf bytes.Buffer
	w   *multipart.Writer
}

// NewMultipart creates a multipart request body builder.
func NewMultipart(t *testing.T) *MultipartBuilder {
	t.Helper()
	b := &MultipartBuilder{t: t}
	b.w = multipart.NewWriter(&b.buf)
	return b
}

// Field adds a form value. Callers pass JSON strings for structured fields.
func (b *MultipartBuilder) Field(name, value string) *MultipartBuilder {
	b.t.Helper()
	if err := b.w.WriteField(name, value); err != nil {
		b.t.Fatalf("write form field %s: %v", name, err)
	}
	return b
}

// File adds a file part under the given slot key.
func (b *MultipartBuilder) File(slot, filename string, content []byte) *MultipartBuilder {
	b.t.Helper()
	fw, err := b.w.CreateFormFile(slot, filename)
	if err != nil {
		b.t.Fatalf("create form file %s: %v", slot, err)
	}
	if _, err := fw.Write(content); err != nil {
		b.t.Fatalf("write form file %s: %v", slot, err)
	}
	return b
}

// Request finalizes the body and returns a request with the correct
// multipart Content-Type header.
func (b *MultipartBuilder) Request(method, target string) *http.Request {
	b.t.Helper()
	if err := b.w.Close(); err != nil {
		b.t.Fatalf("close multipart writer: %v", err)
	}
	req := httptest.NewRequest(method, target, &b.buf)
	req.Header.Set("Content-Type", b.w.FormDataContentType())
	return req
}
