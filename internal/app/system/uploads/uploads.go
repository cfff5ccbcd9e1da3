// internal/app/system/uploads/uploads.go

// Package uploads adapts the storage backend to the document-field file
// lifecycle: save a blob under a content-type namespace, delete an owned
// path, decide ownership.
//
// A stored path is always root-relative ("/uploads/<namespace>/<name>") and
// is used verbatim as a document field value; consumers prepend the serving
// origin. External absolute URLs are never owned and never deleted.
package uploads

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"context"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store wraps a storage backend with the upload-path conventions.
type Store struct {
	backend storage.Store
	baseURL string // e.g. "/uploads"
	logger  *zap.Logger
}

// New creates an upload store. baseURL is the public prefix under which the
// backend's contents are served.
func New(backend storage.Store, baseURL string, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// Save streams an uploaded part into the backend under the given namespace
// and returns the root-relative path recorded in the document.
func (s *Store) Save(ctx context.Context, fh *multipart.FileHeader, namespace string) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer f.Close()

	ext := filepath.Ext(fh.Filename)
	name := uuid.New().String()[:8] + ext
	storagePath := namespace + "/" + name

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.PutOptions{ContentType: contentType}
	if err := s.backend.Put(ctx, storagePath, f, opts); err != nil {
		return "", fmt.Errorf("store %s: %w", storagePath, err)
	}

	return s.baseURL + "/" + storagePath, nil
}

// Owns reports whether path is an upload this system stored and may delete.
// Empty fields and externally hosted URLs are not owned.
func (s *Store) Owns(path string) bool {
	return strings.HasPrefix(path, s.baseURL+"/")
}

// BestEffortDelete removes an owned path from the backend. Failures are
// logged and swallowed: cleanup must never abort the surrounding save.
// Unowned paths are ignored.
func (s *Store) BestEffortDelete(ctx context.Context, path string) {
	if !s.Owns(path) {
		return
	}
	storagePath := strings.TrimPrefix(path, s.baseURL+"/")
	if err := s.backend.Delete(ctx, storagePath); err != nil {
		s.logger.Warn("failed to delete stored file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
