// internal/app/system/reconcile/reconcile.go

// Package reconcile implements the document/file synchronization core shared
// by every page feature: decoding partial multipart payloads into typed
// patches, resolving uploaded-file slots against document fields, and
// deleting storage paths a mutation has orphaned.
//
// The file lifecycle is tied to the field lifecycle: a single-valued
// file-reference field replaced by an upload loses its previous owned path;
// a multi-valued image list is append-only during upload and reconciled by
// diffing the owned-path set before and after the whole mutation.
package reconcile

import (
	"context"
	"mime/multipart"
)

// Uploader is the storage capability the reconcilers need. Implemented by
// uploads.Store.
type Uploader interface {
	Save(ctx context.Context, fh *multipart.FileHeader, namespace string) (string, error)
	BestEffortDelete(ctx context.Context, path string)
	Owns(path string) bool
}

// SetString overwrites dst when v is present. Scalar fields absent from a
// patch retain their stored values.
func SetString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ReplaceSingle reconciles a single-valued file-reference field against an
// upload slot. When the slot carries a file, the previous owned path is
// best-effort deleted, the new file is stored under ns, and the field is
// overwritten with the new path. When the slot is empty the field is left
// exactly as the field reconciliation set it, so clients can round-trip
// paths they intend to keep.
func ReplaceSingle(ctx context.Context, up Uploader, ns string, files Files, key string, field *string) error {
	fh := files.First(key)
	if fh == nil {
		return nil
	}

	if prev := *field; prev != "" && up.Owns(prev) {
		up.BestEffortDelete(ctx, prev)
	}

	path, err := up.Save(ctx, fh, ns)
	if err != nil {
		return err
	}
	*field = path
	return nil
}

// AppendAll stores every file in the slot under ns and appends the stored
// paths to list. Existing entries are never touched or deduplicated; orphan
// deletion is handled by the caller's before/after path-set diff.
func AppendAll(ctx context.Context, up Uploader, ns string, files Files, key string, list *[]string) error {
	for _, fh := range files.All(key) {
		path, err := up.Save(ctx, fh, ns)
		if err != nil {
			return err
		}
		*list = append(*list, path)
	}
	return nil
}

// PathSet is a set of document file-reference paths.
type PathSet map[string]struct{}

// NewPathSet builds a set from paths, skipping empty strings.
func NewPathSet(paths ...string) PathSet {
	s := PathSet{}
	s.Add(paths...)
	return s
}

// Add inserts non-empty paths into the set.
func (s PathSet) Add(paths ...string) {
	for _, p := range paths {
		if p != "" {
			s[p] = struct{}{}
		}
	}
}

// Diff returns the paths present in s but not in other.
func (s PathSet) Diff(other PathSet) []string {
	var out []string
	for p := range s {
		if _, ok := other[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// DeleteOrphans best-effort deletes every owned path present before the
// mutation but absent after it. Unowned (external) paths are skipped by the
// uploader itself.
func DeleteOrphans(ctx context.Context, up Uploader, before, after PathSet) {
	for _, p := range before.Diff(after) {
		if up.Owns(p) {
			up.BestEffortDelete(ctx, p)
		}
	}
}

// DeleteAll best-effort deletes every owned path in the set. Used when a
// document is deleted and its whole file tree goes with it.
func DeleteAll(ctx context.Context, up Uploader, paths PathSet) {
	for p := range paths {
		if up.Owns(p) {
			up.BestEffortDelete(ctx, p)
		}
	}
}
