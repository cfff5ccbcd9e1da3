// internal/app/system/reconcile/files.go
package reconcile

import (
	"fmt"
	"mime/multipart"
	"strconv"
)

// Files maps upload slot keys to the files submitted under them. Single-file
// inputs and multi-file pickers both land here as a sequence, so slot
// handling is uniform.
type Files map[string][]*multipart.FileHeader

// CollectFiles normalizes a parsed multipart form into a slot map. A nil
// form (plain JSON request) yields an empty map.
func CollectFiles(form *multipart.Form) Files {
	files := Files{}
	if form == nil {
		return files
	}
	for key, fhs := range form.File {
		for _, fh := range fhs {
			if fh != nil && fh.Size > 0 {
				files[key] = append(files[key], fh)
			}
		}
	}
	return files
}

// First returns the first file in the slot, or nil when the slot is empty.
func (f Files) First(key string) *multipart.FileHeader {
	if fhs := f[key]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}

// All returns every file in the slot, in submission order.
func (f Files) All(key string) []*multipart.FileHeader {
	return f[key]
}

// IndexedSlot builds a flat-array slot key: "serviceImgs0", "aboutImgs2".
func IndexedSlot(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// NestedSlot builds a composite slot key for nested arrays:
// "eventImgs1_3" addresses (outer, inner) = (1, 3).
func NestedSlot(prefix string, outer, inner int) string {
	return fmt.Sprintf("%s%d_%d", prefix, outer, inner)
}
