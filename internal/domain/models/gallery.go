// internal/domain/models/gallery.go
package models

import "time"

// GalleryEvent is one event inside a year block. Images is the multi-valued
// file-reference list: entries are appended on upload and orphan-diffed on
// update, never deduplicated.
type GalleryEvent struct {
	Title  string   `bson:"title" json:"title"`
	Images []string `bson:"images" json:"images"`
}

// YearBlock groups gallery events under a year.
type YearBlock struct {
	Year   FlexInt        `bson:"year" json:"year"`
	Events []GalleryEvent `bson:"events" json:"events"`
}

// GalleryPage is the singleton gallery document.
type GalleryPage struct {
	Meta  `bson:",inline"`
	Hero  Hero        `bson:"hero" json:"hero"`
	Years []YearBlock `bson:"years" json:"years"`
}

// NewGalleryPage returns a gallery page with default copy.
func NewGalleryPage() *GalleryPage {
	return &GalleryPage{Hero: Hero{Title: "Our Gallery"}}
}

// CurrentYear is the fallback for a year block whose year fails to parse.
func CurrentYear() int { return time.Now().Year() }
