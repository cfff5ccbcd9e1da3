// Package htmlsanitize strips dangerous markup from rich-text content
// before it is stored.
//
// Guideline documents are authored in a rich-text editor and rendered as
// HTML on the public site, so everything that reaches the database goes
// through the UGC policy first.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with all disallowed HTML removed. Safe formatting
// tags (p, em, strong, lists, links, images) survive.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
